package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// PaddingFieldName returns the hidden input name for the chunk at index.
func PaddingFieldName(prefix string, index int) string {
	return prefix + "_" + strconv.Itoa(index)
}

// PaddingFields renders one hidden input per chunk. Inputs are named
// "<prefix>_0", "<prefix>_1", and so on, so padding is echoed back in POSTs.
func PaddingFields(prefix string, chunks []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for i, chunk := range chunks {
			if _, err := io.WriteString(w, `<input type="hidden" name="`+
				templ.EscapeString(PaddingFieldName(prefix, i))+`" value="`+
				templ.EscapeString(chunk)+`">`); err != nil {
				return err
			}
		}
		return nil
	})
}

// PaddingTrailer renders chunk as an HTML comment appended to a page body.
// Padding chunks are base64url text and cannot close the comment early.
func PaddingTrailer(chunk string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if chunk == "" {
			return nil
		}
		_, err := io.WriteString(w, "<!-- "+templ.EscapeString(chunk)+" -->")
		return err
	})
}
