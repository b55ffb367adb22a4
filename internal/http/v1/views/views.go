// Package views holds the server-rendered pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"matchday/internal/domain/models"
)

const (
	PageHome     = "home"
	PageLogin    = "login"
	PageRegister = "register"
)

//go:embed *.html
var files embed.FS

type LoginPage struct {
	Username string
	Error    string
}

type RegisterPage struct {
	Email    string
	Username string
	Team     string
	Teams    []models.Team
	Error    string
}

var funcs = template.FuncMap{
	"kickoff": func(t time.Time) string {
		return t.UTC().Format("Mon 2 Jan 15:04 MST")
	},
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageHome, PageLogin, PageRegister} {
		t, err := template.New(page).Funcs(funcs).ParseFS(files, "layout.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page into w. The page is rendered into a buffer first so
// a template error never leaves a half written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("views: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("views: render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
