package issueform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBody = `### Recipe Title

Grandma's <b>Apple Pie</b>

### Recipe URL

https://www.Example.com/pie?x=1&y=2

### Recipe Tags

Dessert, Baking

### Custom Tags

_No response_

### Notes

Use tart apples.
Bake longer at altitude.

### Anything Else

ignored text
`

func TestParse(t *testing.T) {
	sub := NewParser().Parse(sampleBody)

	assert.Equal(t, "Grandma's Apple Pie", sub.Get(FieldTitle))
	assert.Equal(t, "https://www.Example.com/pie?x=1&y=2", sub.Get(FieldURL))
	assert.Equal(t, "Dessert, Baking", sub.Get(FieldTags))
	assert.Equal(t, "", sub.Get(FieldCustomTags))
	assert.Equal(t, "Use tart apples. Bake longer at altitude.", sub.Get(FieldNotes))
	assert.Len(t, sub, 4)
}

func TestParse_UnknownHeaderClosesField(t *testing.T) {
	body := "### Recipe Title\nSoup\n### Other\nnot part of the title\n"
	sub := NewParser().Parse(body)
	assert.Equal(t, "Soup", sub.Get(FieldTitle))
}

func TestParse_TextBeforeAnyHeaderIgnored(t *testing.T) {
	body := "preamble\n\n### Recipe URL\r\nhttps://a.example/\r\n"
	sub := NewParser().Parse(body)
	assert.Equal(t, Submission{FieldURL: "https://a.example/"}, sub)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, NewParser().Parse(""))
}

func TestParse_ScriptStripped(t *testing.T) {
	body := "### Recipe Title\n<script>alert(1)</script>\nMac & Cheese\n"
	sub := NewParser().Parse(body)
	assert.Equal(t, "Mac & Cheese", sub.Get(FieldTitle))
}
