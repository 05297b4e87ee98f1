package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

func TestDetectRedundantParens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		src            string
		wantSuggestion string
	}{
		{
			name:           "parenthesized pair",
			src:            "(a, b) = foo()",
			wantSuggestion: "a, b = foo()",
		},
		{
			name:           "parenthesized single target",
			src:            "(a) = foo()",
			wantSuggestion: "a = foo()",
		},
		{
			name: "bare list",
			src:  "a, b = foo()",
		},
		{
			name: "no assignment at all",
			src:  "puts foo",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			file := syntax.Parse("test.rb", []byte(test.src))
			issues, err := DetectRedundantParens("test.rb", file, tt.SeverityInfo)
			require.NoError(t, err)

			if test.wantSuggestion == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, RedundantParensRuleName, issues[0].Rule)
			assert.Equal(t, test.wantSuggestion, issues[0].Suggestion)
			require.Len(t, issues[0].Edits, 2)
		})
	}
}

func TestRedundantParensEdits(t *testing.T) {
	t.Parallel()

	src := "(a, b) = foo()"
	file := syntax.Parse("test.rb", []byte(src))
	issues, err := DetectRedundantParens("test.rb", file, tt.SeverityInfo)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	edits := issues[0].Edits
	assert.Equal(t, tt.TextEdit{Start: 0, End: 1}, edits[0])
	assert.Equal(t, tt.TextEdit{Start: 5, End: 6}, edits[1])
}
