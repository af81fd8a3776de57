// Package view renders the site's HTML. Templates are embedded so the
// binary is self-contained; lookup helpers from the model package are
// exposed as template funcs so pages can resolve foreign keys with the
// "#<id>" fallback instead of crashing on not-yet-loaded reference data.
package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"programLabel":  model.ProgramLabel,
		"locationLabel": model.LocationLabel,
		"weekdayName":   model.WeekdayName,
		"shortTime":     model.ShortTime,
		"attStatus":     model.AttendanceStatusLabel,
		"attBadge":      model.AttendanceBadgeClass,
		"memStatus":     model.MembershipStatusLabel,
		"year":          func() int { return time.Now().Year() },
	}
	tpl, err := template.New("site").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes the named page template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
