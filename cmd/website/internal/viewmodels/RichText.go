package viewmodels

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = bluemonday.UGCPolicy()

/*
RichText sanitizes free text from the catalogue source so it can be
rendered unescaped. Line breaks become <br>.
*/
func RichText(text string) template.HTML {
	sanitized := richTextPolicy.Sanitize(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, "\r\n", "\n")

	return template.HTML(strings.ReplaceAll(sanitized, "\n", "<br>"))
}
