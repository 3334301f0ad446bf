// Package templates provides presentation filters for web templates:
// absolute and relative datetime formatting, newline-to-<br> conversion, and
// random padding rendered into pages and forms.
package templates
