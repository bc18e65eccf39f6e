// Package workflow performs quick sanity checks on GitHub Actions workflow files
package workflow

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// requiredKeys must each start some line of a workflow
var requiredKeys = []string{"name", "on", "jobs"}

// maxParallel bounds how many files LintFiles reads at once
const maxParallel = 4

// Finding is one problem reported for a workflow file. Line is 0 for
// file-level findings.
type Finding struct {
	Line    int
	Message string
}

func (f Finding) String() string {
	if f.Line == 0 {
		return f.Message
	}
	return fmt.Sprintf("Line %d: %s", f.Line, f.Message)
}

// Report is the lint result for one file
type Report struct {
	Path     string
	Lines    int
	Findings []Finding
	// MissingKeys lists required top-level keys that were not found
	MissingKeys []string
	// Err is set when the file could not be read
	Err error
}

// StructureOK reports whether all required keys are present
func (r *Report) StructureOK() bool {
	return r.Err == nil && len(r.MissingKeys) == 0
}

// Clean reports whether the file was read and nothing was found
func (r *Report) Clean() bool {
	return r.StructureOK() && len(r.Findings) == 0
}

// Lint checks workflow content
func Lint(path string, data []byte) Report {
	report := Report{Path: path}

	lines := splitLines(data)
	report.Lines = len(lines)

	for i, line := range lines {
		n := i + 1
		if strings.Contains(line, "\t") {
			report.Findings = append(report.Findings, Finding{Line: n, Message: "Contains tab character (use spaces instead)"})
		}

		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "#") {
			indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
			if indent%2 != 0 {
				report.Findings = append(report.Findings, Finding{Line: n, Message: fmt.Sprintf("Odd indentation (%d spaces)", indent)})
			}
		}
	}

	found := make(map[string]bool, len(requiredKeys))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, key := range requiredKeys {
			if strings.HasPrefix(trimmed, key+":") {
				found[key] = true
				break
			}
		}
	}
	for _, key := range requiredKeys {
		if !found[key] {
			report.MissingKeys = append(report.MissingKeys, key)
			report.Findings = append(report.Findings, Finding{Message: fmt.Sprintf("Missing '%s:' field", key)})
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		report.Findings = append(report.Findings, Finding{Message: fmt.Sprintf("YAML syntax error: %v", err)})
	}

	return report
}

// LintFile reads and checks a single file
func LintFile(path string) Report {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	return Lint(path, data)
}

// LintFiles checks paths concurrently and returns reports in argument order.
// Unreadable files are reported through Report.Err; the returned error is
// only set when ctx is cancelled.
func LintFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = LintFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// splitLines splits data into lines without their terminators. A trailing
// newline does not start an extra line. Lines may be of any length.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	parts := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	lines := make([]string, len(parts))
	for i, part := range parts {
		lines[i] = string(bytes.TrimSuffix(part, []byte("\r")))
	}
	return lines
}
