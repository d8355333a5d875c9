// Package view renders the server-side public pages (showcase and embed)
// from embedded html/template files.
package view

import (
	"embed"
	"html/template"
	"io"
	"math"
	"strings"

	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the payload both public page templates render from.
type PageData struct {
	Company        *usecase.WidgetCompany
	Reviews        []*usecase.WidgetReview
	AverageRating  float64
	AverageRounded int
	ReviewCount    int
}

// NewPageData shapes a widget projection for the templates.
func NewPageData(view *usecase.WidgetView) *PageData {
	return &PageData{
		Company:        view.Company,
		Reviews:        view.Reviews,
		AverageRating:  view.AverageRating,
		AverageRounded: int(math.Round(view.AverageRating)),
		ReviewCount:    view.ReviewCount,
	}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	templates, err := template.New("pages").Funcs(template.FuncMap{
		"stars": stars,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page templates")
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.Wrapf(r.templates.ExecuteTemplate(w, name, data), "failed to render %s", name)
}

// stars renders a 1-5 rating as filled stars. Accepts the pointer form used
// by optional ratings.
func stars(rating any) string {
	n := 0
	switch v := rating.(type) {
	case int:
		n = v
	case *int:
		if v != nil {
			n = *v
		}
	}
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}

	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
