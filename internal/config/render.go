package config

// RenderConfig holds settings for drawing the board as text.
type RenderConfig struct {
	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool

	// Flip draws the board from Black's side
	Flip bool

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Coordinates: true,
	}
}
