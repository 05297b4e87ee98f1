package syntax

// Span is a half-open byte interval [Start, End) over the original source.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Text returns the literal source text the span covers. Out-of-range
// bounds are clamped rather than panicking.
func (s Span) Text(src []byte) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return string(src[start:end])
}

// Position is a resolved location in a source file. Line and Column are
// 1-based; Offset is the byte offset from the start of the file.
type Position struct {
	Line   int
	Column int
	Offset int
}
