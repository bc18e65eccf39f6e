// Package ingest turns exported bookmark listings into a recipe catalog
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Row is one bookmark as exported, before any cleaning
type Row struct {
	Title     string
	URL       string
	TimeAdded string
	Tags      string
}

// Format identifies an export file format
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// ParseFormat parses a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatCSV, FormatHTML:
		return f, nil
	default:
		return FormatAuto, fmt.Errorf("invalid format %q: must be auto, csv, or html", s)
	}
}

// Resolve picks a concrete format for path, using the file extension when
// the format is auto
func (f Format) Resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatCSV
	}
}

// Read reads rows from r in the given concrete format
func Read(r io.Reader, f Format) ([]Row, error) {
	switch f {
	case FormatHTML:
		return ReadPocketHTML(r)
	case FormatCSV:
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}
