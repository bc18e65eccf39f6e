package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadPocketHTML reads Pocket's HTML export, where every bookmark is an
// anchor carrying time_added and tags attributes
func ReadPocketHTML(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML export: %w", err)
	}

	var rows []Row
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		timeAdded, _ := s.Attr("time_added")
		tags, _ := s.Attr("tags")

		rows = append(rows, Row{
			Title:     strings.TrimSpace(s.Text()),
			URL:       href,
			TimeAdded: timeAdded,
			Tags:      tags,
		})
	})

	return rows, nil
}
