// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move rejection taxonomy and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Move rejections. Every rejected move leaves the game exactly as it was.
var (
	// ErrInvalidSource indicates an empty origin square or a piece that
	// does not belong to the side to move.
	ErrInvalidSource = errors.New("invalid source square")

	// ErrInvalidTarget indicates a destination occupied by the mover's own piece.
	ErrInvalidTarget = errors.New("invalid target square")

	// ErrIllegalPattern indicates a move the piece cannot make.
	ErrIllegalPattern = errors.New("illegal move pattern")

	// ErrExposesKing indicates a move that would leave the mover's king attacked.
	ErrExposesKing = errors.New("move exposes king")
)

// Sentinel errors for the promotion sub-protocol, input and setup.
var (
	// ErrPromotionPending indicates a move attempted before the previous
	// promotion was finalized.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates a promotion choice with nothing to promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a type other than
	// knight, bishop, rook or queen.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates malformed move input.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")

	// ErrTooManyGames indicates the server is at its session limit.
	ErrTooManyGames = errors.New("too many games")
)

// IsRejection reports whether err is one of the four move rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidSource) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrIllegalPattern) ||
		errors.Is(err, ErrExposesKing)
}

// MoveError wraps a rejection with the context of the attempted move.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply the move would have been
	From  string // Origin square, e.g. "e2"
	To    string // Destination square, e.g. "e4"
	Piece string // The moving piece, if there was one
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move input parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
