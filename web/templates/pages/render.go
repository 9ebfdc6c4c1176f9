package pages

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"cursos_app_echo/web/templates"
)

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02/01/2006")
	},
	"lower": strings.ToLower,
}

// registry holds one clone of the base layout per page, so each page can
// define its own "content" block
var registry = mustParse(templates.FS)

func mustParse(fsys fs.FS) map[string]*template.Template {
	base := template.Must(template.New("").Funcs(funcs).ParseFS(fsys, "layouts/*.html", "partials/*.html"))

	files, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		panic(err)
	}

	out := make(map[string]*template.Template, len(files))
	for _, file := range files {
		page := template.Must(base.Clone())
		template.Must(page.ParseFS(fsys, file))
		out[strings.TrimSuffix(path.Base(file), ".html")] = page
	}
	return out
}

// page wraps a parsed page as a templ component rendering the base layout
func page(name string, data any) templ.Component {
	t, ok := registry[name]
	if !ok {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return fmt.Errorf("template not found: %s", name)
		})
	}
	return templ.FromGoHTML(t.Lookup("base"), data)
}
