package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanWorkflow = `name: Add recipe
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
	dir := setupCommandTest(t)
	path := filepath.Join(dir, "add.yml")
	writeFile(t, path, cleanWorkflow)

	out, _, err := executeCommand(t, "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total lines: 9")
	assert.Contains(t, out, "Basic structure looks good")
	assert.Contains(t, out, "No issues found")
}

func TestLint_FindingsAreWarnings(t *testing.T) {
	dir := setupCommandTest(t)
	path := filepath.Join(dir, "bad.yml")
	writeFile(t, path, "name: x\non:\n   push:\njobs:\n\tbuild: {}\n")

	out, _, err := executeCommand(t, "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Line 3: Odd indentation (3 spaces)")
	assert.Contains(t, out, "Line 5: Contains tab character")

	_, _, err = executeCommand(t, "lint", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue(s) found")
}

func TestLint_ReportsInArgumentOrder(t *testing.T) {
	dir := setupCommandTest(t)
	var paths []string
	for _, name := range []string{"c.yml", "a.yml", "b.yml"} {
		p := filepath.Join(dir, name)
		writeFile(t, p, cleanWorkflow)
		paths = append(paths, p)
	}

	out, _, err := executeCommand(t, append([]string{"lint"}, paths...)...)
	require.NoError(t, err)

	c := strings.Index(out, "c.yml")
	a := strings.Index(out, "a.yml")
	b := strings.Index(out, "b.yml")
	assert.True(t, c < a && a < b, "reports out of order:\n%s", out)
}

func TestLint_UnreadableFile(t *testing.T) {
	dir := setupCommandTest(t)
	good := filepath.Join(dir, "good.yml")
	writeFile(t, good, cleanWorkflow)

	_, stderr, err := executeCommand(t, "lint", good, filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read 1 of 2")
	assert.Contains(t, stderr, "missing.yml")
}

func TestLint_RequiresArgs(t *testing.T) {
	setupCommandTest(t)

	_, _, err := executeCommand(t, "lint")
	require.Error(t, err)
}
