package templates

import (
	"html/template"
	"strings"
)

const lineBreak = "<br>\n"

// NL2BR escapes value for HTML and turns each newline into a line break.
// The result is marked safe so html/template does not escape it again.
func NL2BR(value string) template.HTML {
	return template.HTML(NL2BRText(value))
}

// NL2BRText is NL2BR for contexts that do not autoescape, such as
// text/template. The value is still escaped.
func NL2BRText(value string) string {
	lines := strings.Split(template.HTMLEscapeString(value), "\n")
	return strings.Join(lines, lineBreak)
}
