// Package view plugs html/template into Echo's Renderer interface. Every
// page template under web/templates is parsed once at startup; a parse
// error is a deploy-time failure, not a request-time one.
package view

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// Renderer renders named page templates with the shared partials.
type Renderer struct {
	templates *template.Template
}

// funcs are the helpers available inside templates.
var funcs = template.FuncMap{
	// day formats a calendar day (either time.Time or YYYY-MM-DD string)
	// for display.
	"day": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.UTC().Format("02/01/2006")
		case string:
			if parsed, err := time.Parse("2006-01-02", t); err == nil {
				return parsed.Format("02/01/2006")
			}
			return t
		default:
			return fmt.Sprint(v)
		}
	},
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	// pages yields [1..n] for the pagination control.
	"pages": func(n int) []int {
		if n < 1 {
			n = 1
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"add": func(a, b int) int { return a + b },
}

// New parses every *.html under dir.
func New(dir string) (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
