package chess

// Move is a start/end square pair.
type Move struct {
	From Square
	To   Square
}

// IsZero reports whether the move is the "no move yet" value.
func (m Move) IsZero() bool {
	return m.From == m.To
}

// String returns the move in coordinate form, e.g. "e2-e4".
func (m Move) String() string {
	if m.IsZero() {
		return "--"
	}
	return m.From.String() + "-" + m.To.String()
}
