package token

import "fmt"

// Position represents a location in the input text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns the position as "offset" for single-line input, which is
// the common case for date expressions.
func (p Position) String() string {
	if p.Line > 1 {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%d", p.Offset)
}

// Span represents a range in the input text.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// String formats the span as a half-open offset range.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start.Offset, s.End.Offset)
}
