// Package page holds the server-rendered pages mounted via templ.Handler.
// The dashboard is a static shell; all state comes from /api/state.
package page

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/home.html
var templatesFS embed.FS

var homeTmpl = template.Must(template.ParseFS(templatesFS, "templates/home.html"))

func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return homeTmpl.Execute(w, nil)
	})
}
