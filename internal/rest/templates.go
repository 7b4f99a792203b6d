package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"dayMonth": portal.DayMonth,
	"longDate": portal.LongDate,
	"join":     strings.Join,
}

// Renderer executes one page template inside its layout. Pages whose name
// starts with "admin_" use the admin layout.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range names {
		base := path.Base(name)
		if strings.HasPrefix(base, "layout") {
			continue
		}

		layout := "templates/layout.html"
		if strings.HasPrefix(base, "admin_") {
			layout = "templates/layout_admin.html"
		}

		tmpl, err := template.New(base).Funcs(templateFuncs).ParseFS(templateFS, layout, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		r.pages[strings.TrimSuffix(base, ".html")] = tmpl
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
