package fixer

import (
	"fmt"
	"os"
	"sort"

	tt "github.com/rubytools/ralint/internal/types"
)

// Fixer applies the text edits carried by lint issues to source files.
type Fixer struct {
	DryRun        bool
	MinConfidence float64 // threshold for fixing issues
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix applies the edits of every sufficiently confident issue to the
// file. Edits are applied back to front; an edit overlapping an already
// applied one is skipped.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var edits []tt.TextEdit
	for _, issue := range issues {
		if issue.Confidence < f.MinConfidence || len(issue.Edits) == 0 {
			continue
		}
		if f.DryRun {
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			continue
		}
		edits = append(edits, issue.Edits...)
	}
	if f.DryRun || len(edits) == 0 {
		return nil
	}

	fixed, applied := applyEdits(content, edits)
	if applied == 0 {
		return nil
	}
	if err := os.WriteFile(filename, fixed, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Applied %d fix(es) in %s\n", applied, filename)
	return nil
}

// applyEdits applies edits in descending start order so that earlier
// offsets stay valid while later text is rewritten.
func applyEdits(content []byte, edits []tt.TextEdit) ([]byte, int) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start > edits[j].Start
		}
		return edits[i].End > edits[j].End
	})

	out := content
	applied := 0
	limit := len(content)
	for _, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > limit {
			continue
		}
		out = append(out[:e.Start], append([]byte(e.NewText), out[e.End:]...)...)
		limit = e.Start
		applied++
	}
	return out, applied
}
