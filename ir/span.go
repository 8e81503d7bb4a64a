package ir

// Span is an inclusive range of offsets relative to some cursor position.
// The zero Span covers offset 0 only.
type Span struct {
	Low  int
	High int
}

func (s *Span) Include(offset int) {
	s.Low = min(s.Low, offset)
	s.High = max(s.High, offset)
}

func (s *Span) IncludeRange(low, high int) {
	s.Low = min(s.Low, low)
	s.High = max(s.High, high)
}

// Shift rebases the span on a cursor that sits delta cells to the left.
func (s *Span) Shift(delta int) {
	s.Low += delta
	s.High += delta
}

func (s Span) Contains(offset int) bool {
	return offset >= s.Low && offset <= s.High
}
