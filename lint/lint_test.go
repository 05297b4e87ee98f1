package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tt "github.com/rubytools/ralint/internal/types"
)

func TestParseConfigurationFile(t *testing.T) {
	t.Parallel()

	content := `name: ralint
rules:
  trailing-discard:
    severity: error
    options:
      allow-named-underscore: true
  redundant-assignment-parens:
    severity: "off"
`
	path := filepath.Join(t.TempDir(), ".ralint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := ParseConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ralint", config.Name)

	discard, ok := config.Rules["trailing-discard"]
	require.True(t, ok)
	assert.Equal(t, tt.SeverityError, discard.Severity)
	assert.Equal(t, true, discard.Options["allow-named-underscore"])

	parens, ok := config.Rules["redundant-assignment-parens"]
	require.True(t, ok)
	assert.Equal(t, tt.SeverityOff, parens.Severity)
}

func TestParseConfigurationFileMissing(t *testing.T) {
	t.Parallel()

	config, err := ParseConfigurationFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, config.Rules)
}

func TestParseConfigurationFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ralint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [not, a, map]"), 0o644))

	_, err := ParseConfigurationFile(path)
	require.Error(t, err)
}

func TestNewEngineWithConfig(t *testing.T) {
	t.Parallel()

	content := `rules:
  trailing-discard:
    severity: "off"
`
	path := filepath.Join(t.TempDir(), ".ralint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	engine, err := New(path, zap.NewNop())
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("a, b, _ = foo()\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.rb"),
		[]byte("a, b, _ = foo()\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.rb"),
		[]byte("a, b = foo()\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"),
		[]byte("a, b, _ = foo()\n"), 0o644))

	engine, err := New("", zap.NewNop())
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), engine, dir, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, filepath.Join(dir, "bad.rb"), issues[0].Filename)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.rb")
	require.NoError(t, os.WriteFile(path, []byte("x, _, _ = bar()\n"), 0o644))

	engine, err := New("", zap.NewNop())
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), zap.NewNop(), engine, []string{path}, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "x, = bar()", issues[0].Suggestion)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(path, []byte("a, b, _ = foo()\n"), 0o644))

	engine, err := New("", zap.NewNop())
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	engine, err := New("", zap.NewNop())
	require.NoError(t, err)

	sources := [][]byte{
		[]byte("a, b, _ = foo()\n"),
		[]byte("ok = compute\n"),
	}
	issues, err := ProcessSources(context.Background(), zap.NewNop(), engine, sources, ProcessSource)
	require.NoError(t, err)
	require.Len(t, issues, 1)
}
