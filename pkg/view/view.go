package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
)

// Href renders u through the container for use in an href or action
// attribute. Unsafe schemes become templ.FailedSanitizationURL.
func Href(u *bridgeurl.URL) templ.SafeURL {
	return templ.URL(u.PlainString())
}

// Link renders an anchor to u with the given text.
func Link(u *bridgeurl.URL, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<a href="`+
			templ.EscapeString(string(Href(u)))+`">`+
			templ.EscapeString(text)+`</a>`)
		return err
	})
}
