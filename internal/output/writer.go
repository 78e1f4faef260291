package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
)

// StateWriter is the interface for writing game positions to output.
// Different implementations handle different formats (text, JSON).
type StateWriter interface {
	// WriteState writes the current position of a game.
	WriteState(g *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewStateWriter returns the writer for the requested format.
func NewStateWriter(w io.Writer, cfg *config.Config, jsonFormat bool) StateWriter {
	if jsonFormat {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg.Render)
}

// TextWriter draws the board followed by a status line.
type TextWriter struct {
	w   io.Writer
	cfg config.RenderConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg config.RenderConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteState writes the board and whose turn it is.
func (tw *TextWriter) WriteState(g *engine.Game) error {
	if err := RenderBoard(tw.w, g.Snapshot(), tw.cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(tw.w, StatusLine(g))
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// StatusLine describes the side to move, check, and a pending promotion.
func StatusLine(g *engine.Game) string {
	if sq, pending := g.PendingPromotion(); pending {
		return fmt.Sprintf("%s to choose a promotion piece for %s", g.Turn().Opposite(), sq)
	}
	line := fmt.Sprintf("%s to move", g.Turn())
	if g.InCheck(g.Turn()) {
		line += " (check)"
	}
	return line
}

// JSONWriter writes game states in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*GameState
	single bool // If true, write each state immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches states and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*GameState, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteState buffers a state for JSON output (or writes immediately in single mode).
// The state is captured at call time.
func (jw *JSONWriter) WriteState(g *engine.Game) error {
	if jw.single {
		return WriteGameStateJSON(jw.w, g)
	}

	jw.states = append(jw.states, NewGameState(g))
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.states)

	// Clear buffer after writing
	jw.states = jw.states[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
