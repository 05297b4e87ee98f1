package syntax

import "strings"

// Parse scans src line by line and collects every plain assignment
// statement it can recognize, together with its `#` comments. The scanner
// is deliberately narrow: a statement is an optionally parenthesized,
// comma-separated list of optionally splatted names, a top-level `=`, and
// a non-empty right-hand-side expression, all on one line. Anything else
// is skipped, never an error, so one unusual line cannot abort analysis
// of the rest of the file.
func Parse(name string, src []byte) *File {
	f := &File{Name: name, Src: src}

	line := 1
	start := 0
	for {
		f.lines = append(f.lines, start)
		end := start
		for end < len(src) && src[end] != '\n' {
			end++
		}
		scanLine(f, line, start, end)
		if end >= len(src) {
			break
		}
		start = end + 1
		line++
	}
	return f
}

// scanLine recognizes at most one assignment statement in src[start:end].
func scanLine(f *File, line, start, end int) {
	src := f.Src
	codeEnd := scanComment(f, line, start, end)

	op := findAssignOp(src, start, codeEnd)
	if op < 0 {
		return
	}

	lhs, ok := parseTargetList(src, start, op)
	if !ok {
		return
	}

	rhsStart := skipSpaces(src, op+1, codeEnd)
	rhsEnd := codeEnd
	for rhsEnd > rhsStart && isSpace(src[rhsEnd-1]) {
		rhsEnd--
	}
	if rhsStart >= rhsEnd {
		return
	}

	f.Stmts = append(f.Stmts, &AssignStmt{
		LHS:  lhs,
		Op:   Span{Start: op, End: op + 1},
		RHS:  Span{Start: rhsStart, End: rhsEnd},
		Span: Span{Start: lhs.Span.Start, End: rhsEnd},
		Line: line,
	})
}

// scanComment records the `#` comment on the line, if any, and returns
// the end of the code portion. Quoted `#` characters do not start a
// comment.
func scanComment(f *File, line, start, end int) int {
	src := f.Src
	var quote byte
	for i := start; i < end; i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			code := strings.TrimSpace(string(src[start:i]))
			f.Comments = append(f.Comments, Comment{
				Text: strings.TrimSpace(string(src[i:end])),
				Span: Span{Start: i, End: end},
				Line: line,
				Own:  code == "",
			})
			return i
		}
	}
	return end
}

// findAssignOp locates the plain assignment operator in src[start:end]:
// a top-level `=` that is not part of `==`, `=~`, `=>`, a comparison, or
// a compound assignment.
func findAssignOp(src []byte, start, end int) int {
	var quote byte
	depth := 0
	for i := start; i < end; i++ {
		c := src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < end && (src[i+1] == '=' || src[i+1] == '~' || src[i+1] == '>') {
				i++
				continue
			}
			if i > start && strings.IndexByte("=!<>+-*/%|&^", src[i-1]) >= 0 {
				continue
			}
			return i
		}
	}
	return -1
}

// parseTargetList parses src[start:op] as an assignment target list. It
// returns false whenever the text does not have exactly that shape.
func parseTargetList(src []byte, start, op int) (*TargetList, bool) {
	list := &TargetList{}

	i := skipSpaces(src, start, op)
	openParen := -1
	if i < op && src[i] == '(' {
		list.Parenthesized = true
		openParen = i
		i = skipSpaces(src, i+1, op)
	}

	closeParen := -1
	for i < op {
		if list.Parenthesized && src[i] == ')' {
			closeParen = i
			i = skipSpaces(src, i+1, op)
			break
		}

		tgt, next, ok := parseTarget(src, i, op)
		if !ok {
			return nil, false
		}
		list.Targets = append(list.Targets, tgt)

		i = skipSpaces(src, next, op)
		if i < op && src[i] == ',' {
			i = skipSpaces(src, i+1, op)
			continue
		}
		if list.Parenthesized && i < op && src[i] == ')' {
			closeParen = i
			i = skipSpaces(src, i+1, op)
		}
		break
	}

	if i != op || len(list.Targets) == 0 {
		return nil, false
	}
	if list.Parenthesized {
		if closeParen < 0 {
			return nil, false
		}
		list.Span = Span{Start: openParen, End: closeParen + 1}
	} else {
		first := list.Targets[0]
		last := list.Targets[len(list.Targets)-1]
		list.Span = Span{Start: first.Span.Start, End: last.Span.End}
	}
	return list, true
}

// parseTarget parses one assignment target: an optional `*`, an optional
// `$`, `@` or `@@` sigil, and an identifier.
func parseTarget(src []byte, i, limit int) (*Target, int, bool) {
	start := i
	splat := false
	if i < limit && src[i] == '*' {
		splat = true
		i++
	}

	nameStart := i
	if i < limit && src[i] == '$' {
		i++
	} else {
		for i < limit && src[i] == '@' && i-nameStart < 2 {
			i++
		}
	}
	if i >= limit || !isNameStart(src[i]) {
		return nil, 0, false
	}
	i++
	for i < limit && isNameChar(src[i]) {
		i++
	}

	return &Target{
		Name:  string(src[nameStart:i]),
		Splat: splat,
		Span:  Span{Start: start, End: i},
	}, i, true
}

func skipSpaces(src []byte, i, limit int) int {
	for i < limit && isSpace(src[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
