package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html static/*.css
var assets embed.FS

var views = []string{ViewHome, ViewNew, ViewEdit, ViewNotFound, ViewError}

// Renderer executes the embedded views
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every view with the shared layout and form partial
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(views))}
	for _, view := range views {
		t, err := template.ParseFS(assets,
			"templates/layout.html",
			"templates/_form.html",
			"templates/"+view+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", view, err)
		}
		r.templates[view] = t
	}
	return r, nil
}

// Render executes view into a buffer so a failing template writes nothing
func (r *Renderer) Render(view string, page Page) ([]byte, error) {
	t, ok := r.templates[view]
	if !ok {
		return nil, fmt.Errorf("unknown view: %s", view)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", view, err)
	}
	return buf.Bytes(), nil
}
