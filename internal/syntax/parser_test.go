package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		src           string
		wantStmts     int
		wantTargets   []string
		parenthesized bool
	}{
		{
			name:        "plain multiple assignment",
			src:         "a, b = foo()",
			wantStmts:   1,
			wantTargets: []string{"a", "b"},
		},
		{
			name:          "parenthesized list",
			src:           "(a, b) = foo()",
			wantStmts:     1,
			wantTargets:   []string{"a", "b"},
			parenthesized: true,
		},
		{
			name:        "splat target",
			src:         "*rest, x = list",
			wantStmts:   1,
			wantTargets: []string{"rest", "x"},
		},
		{
			name:        "trailing comma",
			src:         "a, b, = foo()",
			wantStmts:   1,
			wantTargets: []string{"a", "b"},
		},
		{
			name:        "sigiled names",
			src:         "@x, @@y, $z = vals",
			wantStmts:   1,
			wantTargets: []string{"@x", "@@y", "$z"},
		},
		{
			name:        "single target",
			src:         "x = 1",
			wantStmts:   1,
			wantTargets: []string{"x"},
		},
		{
			name:      "comparison is not an assignment",
			src:       "a == b",
			wantStmts: 0,
		},
		{
			name:      "compound assignment is skipped",
			src:       "a += 1",
			wantStmts: 0,
		},
		{
			name:      "match operator is skipped",
			src:       "a =~ pattern",
			wantStmts: 0,
		},
		{
			name:      "keyword before target list",
			src:       "if x = 1",
			wantStmts: 0,
		},
		{
			name:      "indexed target is conservatively skipped",
			src:       "a[0], b = f",
			wantStmts: 0,
		},
		{
			name:      "attribute target is conservatively skipped",
			src:       "a.b, c = f",
			wantStmts: 0,
		},
		{
			name:      "empty right-hand side",
			src:       "a, b =",
			wantStmts: 0,
		},
		{
			name:      "unclosed parenthesis",
			src:       "(a, b = foo()",
			wantStmts: 0,
		},
		{
			name:        "hash literal on the right",
			src:         `h = { "k" => v }`,
			wantStmts:   1,
			wantTargets: []string{"h"},
		},
		{
			name:      "plain method call line",
			src:       "puts foo",
			wantStmts: 0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			file := Parse("test.rb", []byte(test.src))
			require.Len(t, file.Stmts, test.wantStmts)
			if test.wantStmts == 0 {
				return
			}

			stmt := file.Stmts[0]
			var names []string
			for _, tgt := range stmt.LHS.Targets {
				names = append(names, tgt.Name)
			}
			assert.Equal(t, test.wantTargets, names)
			assert.Equal(t, test.parenthesized, stmt.LHS.Parenthesized)
		})
	}
}

func TestParseSpans(t *testing.T) {
	t.Parallel()

	src := []byte("a, b, _ = foo()")
	file := Parse("test.rb", src)
	require.Len(t, file.Stmts, 1)

	stmt := file.Stmts[0]
	require.Len(t, stmt.LHS.Targets, 3)

	assert.Equal(t, "a", stmt.LHS.Targets[0].Span.Text(src))
	assert.Equal(t, "b", stmt.LHS.Targets[1].Span.Text(src))
	assert.Equal(t, "_", stmt.LHS.Targets[2].Span.Text(src))
	assert.Equal(t, Span{Start: 0, End: 7}, stmt.LHS.Span)
	assert.Equal(t, "=", stmt.Op.Text(src))
	assert.Equal(t, Span{Start: 8, End: 9}, stmt.Op)
	assert.Equal(t, "foo()", stmt.RHS.Text(src))
	assert.Equal(t, "a, b, _ = foo()", stmt.Text(src))
}

func TestParseSplatSpan(t *testing.T) {
	t.Parallel()

	src := []byte("*rest, x = list")
	file := Parse("test.rb", src)
	require.Len(t, file.Stmts, 1)

	first := file.Stmts[0].LHS.Targets[0]
	assert.True(t, first.Splat)
	assert.Equal(t, "*rest", first.Span.Text(src))
	assert.Equal(t, "rest", first.Name)
}

func TestParseParenthesizedSpan(t *testing.T) {
	t.Parallel()

	src := []byte("(a, b, _) = foo()")
	file := Parse("test.rb", src)
	require.Len(t, file.Stmts, 1)

	stmt := file.Stmts[0]
	assert.True(t, stmt.LHS.Parenthesized)
	assert.Equal(t, "(a, b, _)", stmt.LHS.Span.Text(src))
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	src := []byte("# leading comment\nx, y = pair # trailing\na = \"text # not a comment\"\n")
	file := Parse("test.rb", src)

	require.Len(t, file.Comments, 2)
	assert.Equal(t, "# leading comment", file.Comments[0].Text)
	assert.True(t, file.Comments[0].Own)
	assert.Equal(t, 1, file.Comments[0].Line)

	assert.Equal(t, "# trailing", file.Comments[1].Text)
	assert.False(t, file.Comments[1].Own)
	assert.Equal(t, 2, file.Comments[1].Line)

	require.Len(t, file.Stmts, 2)
	assert.Equal(t, "pair", file.Stmts[0].RHS.Text(src))
	assert.Equal(t, `"text # not a comment"`, file.Stmts[1].RHS.Text(src))
}

func TestFilePosition(t *testing.T) {
	t.Parallel()

	src := []byte("first = 1\nsecond, third = pair\n")
	file := Parse("test.rb", src)
	require.Len(t, file.Stmts, 2)

	pos := file.Position(file.Stmts[1].Span.Start)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 1, pos.Column)

	pos = file.Position(file.Stmts[1].Op.Start)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 15, pos.Column)
}

func TestParseIndentedStatement(t *testing.T) {
	t.Parallel()

	src := []byte("  a, b, _ = foo()")
	file := Parse("test.rb", src)
	require.Len(t, file.Stmts, 1)

	stmt := file.Stmts[0]
	assert.Equal(t, 2, stmt.Span.Start)
	assert.Equal(t, "a, b, _ = foo()", stmt.Text(src))
}
