package static

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Каждый #id из стилей должен быть на странице.
func TestStyleSelectorsHaveElements(t *testing.T) {
	page := Head + FormEnd + Part2 + Part3
	style := page[strings.Index(page, "<style>"):strings.Index(page, "</style>")]

	ids := regexp.MustCompile(`#([a-z-]+)\s*\{`).FindAllStringSubmatch(style, -1)
	require.NotEmpty(t, ids)
	for _, m := range ids {
		assert.Contains(t, page, `id="`+m[1]+`"`, "selector #%s", m[1])
	}
}

func TestFormHasShapes(t *testing.T) {
	for _, shape := range []string{"polygon", "star", "wheel", "grid", "custom"} {
		assert.Contains(t, Head, `<option value="`+shape+`"`)
	}
	assert.Contains(t, Part3, "dcel-form")
}
