// Package issueform extracts a recipe submission from an issue form body
package issueform

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Field is a submission field name
type Field string

const (
	FieldTitle      Field = "title"
	FieldURL        Field = "url"
	FieldTags       Field = "tags"
	FieldCustomTags Field = "custom_tags"
	FieldNotes      Field = "notes"
)

// Fields lists the submission fields in form order
var Fields = []Field{FieldTitle, FieldURL, FieldTags, FieldCustomTags, FieldNotes}

// headers maps form section headers to the field they open
var headers = []struct {
	prefix string
	field  Field
}{
	{"### Recipe Title", FieldTitle},
	{"### Recipe URL", FieldURL},
	{"### Recipe Tags", FieldTags},
	{"### Custom Tags", FieldCustomTags},
	{"### Notes", FieldNotes},
}

// noResponse is what GitHub renders for an optional field left blank
const noResponse = "_No response_"

// Submission holds the raw field values found in a form body
type Submission map[Field]string

// Get returns the value of f, or "" when the field was absent
func (s Submission) Get(f Field) string {
	return s[f]
}

// Parser reads issue form bodies
type Parser struct {
	policy *bluemonday.Policy
}

// NewParser creates a parser that strips any HTML from field values
func NewParser() *Parser {
	return &Parser{policy: bluemonday.StrictPolicy()}
}

// Parse extracts field values from body. Lines under a known "###" header
// are joined with single spaces; an unknown "###" header closes the open
// field.
func (p *Parser) Parse(body string) Submission {
	sub := Submission{}
	var current Field

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if f, ok := headerField(line); ok {
			current = f
			continue
		}
		if strings.HasPrefix(line, "###") {
			current = ""
			continue
		}
		if current == "" || line == noResponse {
			continue
		}

		value := p.sanitize(line)
		if value == "" {
			continue
		}
		if existing, ok := sub[current]; ok {
			sub[current] = existing + " " + value
		} else {
			sub[current] = value
		}
	}

	return sub
}

func headerField(line string) (Field, bool) {
	for _, h := range headers {
		if strings.HasPrefix(line, h.prefix) {
			return h.field, true
		}
	}
	return "", false
}

// sanitize removes markup, leaving the plain text of a value
func (p *Parser) sanitize(value string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(value)))
}
