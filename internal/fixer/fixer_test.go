package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubytools/ralint/internal"
	tt "github.com/rubytools/ralint/internal/types"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.rb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func lintFile(t *testing.T, path string) []tt.Issue {
	t.Helper()
	engine, err := internal.NewEngine(nil)
	require.NoError(t, err)
	issues, err := engine.Run(path)
	require.NoError(t, err)
	return issues
}

func TestFixTrailingDiscard(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "a, b, _ = foo()\n")
	issues := lintFile(t, path)
	require.NotEmpty(t, issues)

	require.NoError(t, New(false, 0.75).Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a, b, = foo()\n", string(content))

	// the corrected file is clean
	assert.Empty(t, lintFile(t, path))
}

func TestFixCombinedRules(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "(a, b, _) = foo()\n")
	issues := lintFile(t, path)
	require.Len(t, issues, 2)

	require.NoError(t, New(false, 0.75).Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a, b, = foo()\n", string(content))
	assert.Empty(t, lintFile(t, path))
}

func TestFixDryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	const original = "a, b, _ = foo()\n"
	path := writeScript(t, original)
	issues := lintFile(t, path)
	require.NotEmpty(t, issues)

	require.NoError(t, New(true, 0.75).Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestFixRespectsConfidenceThreshold(t *testing.T) {
	t.Parallel()

	const original = "a, b, _ = foo()\n"
	path := writeScript(t, original)
	issues := lintFile(t, path)
	require.NotEmpty(t, issues)

	require.NoError(t, New(false, 1.5).Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestApplyEditsSkipsOverlapping(t *testing.T) {
	t.Parallel()

	content := []byte("0123456789")
	edits := []tt.TextEdit{
		{Start: 2, End: 5}, // overlaps the later [4,7) edit and loses
		{Start: 4, End: 7},
		{Start: 8, End: 9},
	}

	out, applied := applyEdits(content, edits)
	assert.Equal(t, 2, applied)
	assert.Equal(t, "012379", string(out))
}

func TestApplyEditsOutOfRange(t *testing.T) {
	t.Parallel()

	content := []byte("abc")
	out, applied := applyEdits(content, []tt.TextEdit{{Start: 1, End: 10}})
	assert.Zero(t, applied)
	assert.Equal(t, "abc", string(out))
}
