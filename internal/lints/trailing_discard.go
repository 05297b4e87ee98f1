package lints

import (
	"fmt"
	"strings"

	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

const (
	TrailingDiscardRuleName = "trailing-discard"

	msgTemplateTrailingDiscard = "Do not use trailing discard targets in multiple assignment. Prefer `%s`."

	noteWholeListCorrection = "every target on the left-hand side is a discard target, " +
		"so the correction removes the whole left-hand side together with the assignment operator."
)

// DiscardPolicy selects which target names count as discards.
// Under the default strict policy any name starting with `_` is a
// discard; with AllowNamedUnderscore set, only the bare `_` is.
type DiscardPolicy struct {
	AllowNamedUnderscore bool
}

func (p DiscardPolicy) isDiscard(t *syntax.Target) bool {
	if p.AllowNamedUnderscore {
		return t.Name == "_"
	}
	return strings.HasPrefix(t.Name, "_")
}

// DetectTrailingDiscards flags multiple-assignment statements whose
// trailing targets only discard values, e.g. `a, b, _ = foo()`, and
// computes the exact deletion that removes them.
func DetectTrailingDiscards(filename string, file *syntax.File, policy DiscardPolicy, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	for _, stmt := range file.Stmts {
		issue, ok := checkTrailingDiscard(filename, file, stmt, policy, severity)
		if !ok {
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func checkTrailingDiscard(filename string, file *syntax.File, stmt *syntax.AssignStmt, policy DiscardPolicy, severity tt.Severity) (tt.Issue, bool) {
	targets := stmt.LHS.Targets
	if len(targets) < 2 {
		// single-target assignment is out of scope for this rule
		return tt.Issue{}, false
	}

	offense := locateOffense(targets, policy)
	if offense < 0 {
		return tt.Issue{}, false
	}

	del := deletionRange(stmt, targets, offense)
	corrected := excise(stmt.Text(file.Src), stmt.Span, del)

	issue := tt.Issue{
		Rule:       TrailingDiscardRuleName,
		Filename:   filename,
		Message:    fmt.Sprintf(msgTemplateTrailingDiscard, corrected),
		Suggestion: corrected,
		Start:      position(file, del.Start),
		End:        position(file, del.End),
		Severity:   severity,
		Confidence: 1.0,
		Edits:      []tt.TextEdit{{Start: del.Start, End: del.End}},
	}
	if offense == 0 {
		issue.Note = noteWholeListCorrection
	}
	return issue, true
}

// locateOffense scans the targets from right to left and returns the
// index of the leftmost member of the trailing discard run, or -1.
//
// A splat target strictly before that index cancels the offense: the
// splat absorbs a variable number of values, so dropping the targets
// after it would change how the right-hand side is distributed.
func locateOffense(targets []*syntax.Target, policy DiscardPolicy) int {
	candidate := -1
	for i := len(targets) - 1; i >= 0; i-- {
		if !policy.isDiscard(targets[i]) {
			break
		}
		candidate = i
	}
	if candidate < 0 {
		return -1
	}
	for i := 0; i < candidate; i++ {
		if targets[i].Splat {
			return -1
		}
	}
	return candidate
}

// deletionRange computes the span to delete for the offense at the given
// index. Three mutually exclusive cases, tested in order:
//
//  1. the discard run covers the entire list: delete from the start of
//     the left-hand side up to the right-hand side, operator included;
//  2. the list is parenthesized: delete from the separator before the
//     offense up to, but not including, the closing parenthesis;
//  3. otherwise: delete from the offense up to the operator.
//
// Case 1 leaves the statement with no left-hand side at all. That is the
// established correction for an all-discard list even though a bare
// expression is what remains; see the rule's note on reported issues.
func deletionRange(stmt *syntax.AssignStmt, targets []*syntax.Target, offense int) syntax.Span {
	first := targets[offense]
	switch {
	case offense == 0:
		return syntax.Span{Start: stmt.LHS.Span.Start, End: stmt.RHS.Start}
	case stmt.LHS.Parenthesized:
		return syntax.Span{Start: first.Span.Start - 1, End: stmt.LHS.Span.End - 1}
	default:
		return syntax.Span{Start: first.Span.Start, End: stmt.Op.Start}
	}
}

// excise removes the part of text covered by del, where text is the
// literal statement source spanning stmt.
func excise(text string, stmt, del syntax.Span) string {
	begin := del.Start - stmt.Start
	end := del.End - stmt.Start
	if begin < 0 {
		begin = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if begin >= end {
		return text
	}
	return text[:begin] + text[end:]
}
