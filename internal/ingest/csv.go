package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// csvColumns are the columns a bookmark export must provide
var csvColumns = []string{"title", "url", "time_added", "tags"}

// ReadCSV reads a headed CSV export. Columns are located by name; extra
// columns are ignored.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading CSV header: file is empty")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[strings.ToLower(name)] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", col)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}

		field := func(col string) string {
			i := index[col]
			if i < len(record) {
				return record[i]
			}
			return ""
		}

		rows = append(rows, Row{
			Title:     field("title"),
			URL:       field("url"),
			TimeAdded: field("time_added"),
			Tags:      field("tags"),
		})
	}

	return rows, nil
}
