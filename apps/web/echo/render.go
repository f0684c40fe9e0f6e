package echoweb

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/escola/core/table"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*templateRenderer)(nil)

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// tablePage is the data of the table.html template.
type tablePage struct {
	AppName string
	Title   string
	Active  string
	Export  string
	Grid    table.Grid
	Total   int
	Actives int
}

type activatable interface {
	IsActive() bool
}

func countActive[T activatable](records []T) int {
	n := 0
	for _, r := range records {
		if r.IsActive() {
			n++
		}
	}
	return n
}
