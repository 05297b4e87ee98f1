package syntax

import "sort"

// Target is a single left-hand destination in an assignment statement.
// Span covers the splat marker when Splat is set; Name never does.
type Target struct {
	Name  string
	Splat bool
	Span  Span
}

// TargetList is the ordered left-hand side of an assignment statement.
// Parenthesized records whether the list is wrapped in explicit
// parentheses; when it is, Span covers both parens.
type TargetList struct {
	Targets       []*Target
	Parenthesized bool
	Span          Span
}

// AssignStmt is a plain assignment statement recognized by the scanner.
// Op is the span of the `=` token and RHS the span of the right-hand-side
// expression (trailing comment excluded).
type AssignStmt struct {
	LHS  *TargetList
	Op   Span
	RHS  Span
	Span Span
	Line int
}

// Text returns the literal source text of the whole statement.
func (s *AssignStmt) Text(src []byte) string {
	return s.Span.Text(src)
}

// Comment is a `#` comment. Own is set when the comment is the only
// content on its line.
type Comment struct {
	Text string
	Span Span
	Line int
	Own  bool
}

// File is the scanned form of one source file.
type File struct {
	Name     string
	Src      []byte
	Stmts    []*AssignStmt
	Comments []Comment

	lines []int // byte offset of each line start
}

// Position resolves a byte offset to a line/column position.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Src) {
		offset = len(f.Src)
	}
	idx := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return Position{Line: idx + 1, Column: offset - f.lines[idx] + 1, Offset: offset}
}

// Slice returns the literal source text covered by the given span.
func (f *File) Slice(sp Span) string {
	return sp.Text(f.Src)
}
