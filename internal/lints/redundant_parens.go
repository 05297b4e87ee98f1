package lints

import (
	"fmt"

	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

const (
	RedundantParensRuleName = "redundant-assignment-parens"

	msgTemplateRedundantParens = "Redundant parentheses around assignment targets. Prefer `%s`."
)

// DetectRedundantParens flags explicit parentheses wrapped around the
// whole target list of an assignment, e.g. `(a, b) = foo()`. The parens
// change nothing when they cover every target, so the bare list reads
// better.
func DetectRedundantParens(filename string, file *syntax.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, stmt := range file.Stmts {
		if !stmt.LHS.Parenthesized {
			continue
		}

		open := stmt.LHS.Span.Start
		closing := stmt.LHS.Span.End - 1
		edits := []tt.TextEdit{
			{Start: open, End: open + 1},
			{Start: closing, End: closing + 1},
		}
		corrected := applyToStmt(stmt.Text(file.Src), stmt.Span, edits)

		issues = append(issues, tt.Issue{
			Rule:       RedundantParensRuleName,
			Filename:   filename,
			Message:    fmt.Sprintf(msgTemplateRedundantParens, corrected),
			Suggestion: corrected,
			Start:      position(file, open),
			End:        position(file, closing+1),
			Severity:   severity,
			Confidence: 1.0,
			Edits:      edits,
		})
	}
	return issues, nil
}

// applyToStmt applies deletions to the statement's own text, with edit
// offsets rebased onto the statement start. Edits must be sorted
// ascending and non-overlapping.
func applyToStmt(text string, stmt syntax.Span, edits []tt.TextEdit) string {
	out := make([]byte, 0, len(text))
	prev := 0
	for _, e := range edits {
		begin := e.Start - stmt.Start
		end := e.End - stmt.Start
		if begin < prev || end > len(text) {
			continue
		}
		out = append(out, text[prev:begin]...)
		out = append(out, e.NewText...)
		prev = end
	}
	out = append(out, text[prev:]...)
	return string(out)
}
