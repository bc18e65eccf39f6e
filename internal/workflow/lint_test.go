package workflow

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const goodWorkflow = `name: Add recipe
on:
  issues:
    types: [opened]
jobs:
  add:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
`

func TestLint_Clean(t *testing.T) {
	r := Lint("good.yml", []byte(goodWorkflow))

	assert.Equal(t, 9, r.Lines)
	assert.Empty(t, r.Findings)
	assert.True(t, r.StructureOK())
	assert.True(t, r.Clean())
}

func TestLint_LineFindings(t *testing.T) {
	content := "name: x\n" +
		"on:\n" +
		"   push:\n" +
		"\tbranches: [main]\n" +
		"# comment\n" +
		" # indented comment\n" +
		"jobs: {}\n"

	r := Lint("bad.yml", []byte(content))

	assert.True(t, r.StructureOK())
	assert.Contains(t, r.Findings, Finding{Line: 3, Message: "Odd indentation (3 spaces)"})
	assert.Contains(t, r.Findings, Finding{Line: 4, Message: "Contains tab character (use spaces instead)"})
	assert.Contains(t, r.Findings, Finding{Line: 4, Message: "Odd indentation (1 spaces)"})
	assert.Contains(t, r.Findings, Finding{Line: 6, Message: "Odd indentation (1 spaces)"})
	for _, f := range r.Findings {
		assert.NotEqual(t, 5, f.Line, "top-level comments are not indentation-checked")
	}
}

func TestLint_MissingKeys(t *testing.T) {
	r := Lint("partial.yml", []byte("name: only a name\n"))

	assert.Equal(t, []string{"on", "jobs"}, r.MissingKeys)
	assert.False(t, r.StructureOK())
	assert.Contains(t, r.Findings, Finding{Message: "Missing 'on:' field"})
	assert.Contains(t, r.Findings, Finding{Message: "Missing 'jobs:' field"})
}

func TestLint_VeryLongLine(t *testing.T) {
	content := "name: x\non: push\n# " + strings.Repeat("a", 2<<20) + "\njobs:\n  build:\n    runs-on: ubuntu-latest\n"

	r := Lint("long.yml", []byte(content))

	assert.Equal(t, 6, r.Lines)
	assert.Empty(t, r.MissingKeys)
	assert.True(t, r.Clean(), "unexpected findings: %v", r.Findings)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(nil))
	assert.Equal(t, []string{""}, splitLines([]byte("\n")))
	assert.Equal(t, []string{"a", "b"}, splitLines([]byte("a\r\nb\r\n")))
	assert.Equal(t, []string{"a", "", "b"}, splitLines([]byte("a\n\nb")))
}

func TestLint_SyntaxError(t *testing.T) {
	r := Lint("broken.yml", []byte("name: x\non: [push\njobs:\n"))

	var found bool
	for _, f := range r.Findings {
		if f.Line == 0 && strings.HasPrefix(f.Message, "YAML syntax error") {
			found = true
		}
	}
	assert.True(t, found, "expected a YAML syntax finding, got %v", r.Findings)
}

func TestFindingString(t *testing.T) {
	assert.Equal(t, "Line 2: Odd indentation (1 spaces)", Finding{Line: 2, Message: "Odd indentation (1 spaces)"}.String())
	assert.Equal(t, "Missing 'on:' field", Finding{Message: "Missing 'on:' field"}.String())
}

func TestLintFiles_OrderAndErrors(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.yml", "b.yml", "c.yml", "d.yml", "e.yml"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(goodWorkflow), 0o644))
		paths = append(paths, p)
	}
	missing := filepath.Join(dir, "missing.yml")
	paths = append(paths, missing)

	reports, err := LintFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, len(paths))

	for i, r := range reports[:5] {
		assert.Equal(t, paths[i], r.Path)
		assert.NoError(t, r.Err)
		assert.True(t, r.Clean())
	}
	assert.Equal(t, missing, reports[5].Path)
	assert.Error(t, reports[5].Err)
	assert.False(t, reports[5].Clean())
}

func TestLintFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LintFiles(ctx, []string{"x.yml"})
	assert.ErrorIs(t, err, context.Canceled)
}
