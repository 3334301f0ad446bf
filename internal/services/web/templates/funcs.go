package templates

import (
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"

	"github.com/whistlebox/webfilters/internal/padding"
	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
)

// FilterOptions configures the template function maps.
type FilterOptions struct {
	// Localizer translates relative timestamps. Nil uses DefaultLocalizer.
	Localizer Localizer
	// Now returns the reference time for relative timestamps. Nil uses
	// time.Now in UTC.
	Now func() time.Time
	// Padding generates random_padding output. Nil uses the crypto/rand
	// backed generator.
	Padding *padding.Generator
}

type filters struct {
	loc     Localizer
	now     func() time.Time
	padding *padding.Generator
}

func newFilters(opts FilterOptions) filters {
	f := filters{loc: opts.Localizer, now: opts.Now, padding: opts.Padding}
	if f.loc == nil {
		f.loc = DefaultLocalizer()
	}
	if f.now == nil {
		f.now = func() time.Time { return time.Now().UTC() }
	}
	if f.padding == nil {
		f.padding = padding.NewSecure()
	}
	return f
}

// FuncMap returns the filters for html/template. nl2br output is marked safe.
func FuncMap(opts FilterOptions) template.FuncMap {
	f := newFilters(opts)
	return template.FuncMap{
		"datetimeformat": f.datetimeFormat,
		"nl2br":          NL2BR,
		"random_padding": f.randomPadding,
	}
}

// TextFuncMap returns the filters for text/template, where nothing is
// autoescaped and nl2br returns a plain string.
func TextFuncMap(opts FilterOptions) texttemplate.FuncMap {
	f := newFilters(opts)
	return texttemplate.FuncMap{
		"datetimeformat": f.datetimeFormat,
		"nl2br":          NL2BRText,
		"random_padding": f.randomPadding,
	}
}

// datetimeFormat backs {{ datetimeformat .T }}, {{ datetimeformat .T "%Y" }}
// and {{ datetimeformat .T "" true }}.
func (f filters) datetimeFormat(t time.Time, args ...any) (string, error) {
	layout := ""
	relative := false
	switch len(args) {
	case 0:
	case 2:
		rel, ok := args[1].(bool)
		if !ok {
			return "", templateArgumentError("datetimeformat", "relative flag must be a bool, got %T", args[1])
		}
		relative = rel
		fallthrough
	case 1:
		l, ok := args[0].(string)
		if !ok {
			return "", templateArgumentError("datetimeformat", "layout must be a string, got %T", args[0])
		}
		layout = l
	default:
		return "", templateArgumentError("datetimeformat", "expected at most 2 arguments, got %d", len(args))
	}
	return DatetimeFormat(f.loc, f.now(), t, layout, relative), nil
}

// randomPadding backs {{ random_padding }} and {{ random_padding 3 4096 }}.
func (f filters) randomPadding(args ...int) ([]string, error) {
	chunkCount := padding.DefaultChunkCount
	maxSize := padding.DefaultMaxSize
	switch len(args) {
	case 0:
	case 2:
		maxSize = args[1]
		fallthrough
	case 1:
		chunkCount = args[0]
	default:
		return nil, templateArgumentError("random_padding", "expected at most 2 arguments, got %d", len(args))
	}
	return f.padding.Generate(chunkCount, maxSize)
}

func templateArgumentError(filter, format string, args ...any) error {
	return apperrors.WithMetadata(apperrors.CodeTemplateArgument, fmt.Sprintf(format, args...), map[string]string{
		"filter": filter,
	})
}
