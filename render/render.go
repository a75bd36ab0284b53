// Package render turns view models into HTML pages and terminal text.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/pkg/errors"
)

//go:embed templates
var templatesFS embed.FS

// Page template names.
const (
	PageLogin     = "login.html"
	PagePassword  = "password.html"
	PageDashboard = "dashboard.html"
	PageCase      = "case.html"
	PageRequests  = "requests.html"
	PageAnalytics = "analytics.html"
	PageAdmin     = "admin.html"
	PageTools     = "tools.html"
	PageError     = "error.html"
)

var funcs = template.FuncMap{
	"badge": func(color string) string {
		if color == "" {
			color = "secondary"
		}
		return "badge bg-" + color
	},
	"upper": strings.ToUpper,
	"join":  strings.Join,
	"add": func(a, b int) int {
		return a + b
	},
}

// Renderer holds one parsed template set per page. Each set is the layout, the partials
// and the page's own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing layout")
	}

	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "listing templates")
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, p := range pages {
		name := path.Base(p)
		if name == "layout.html" {
			continue
		}
		t, err := base.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "cloning layout for %s", name)
		}
		if _, err := t.ParseFS(templatesFS, p); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Execute writes page with data to w.
func (r *Renderer) Execute(w io.Writer, page string, data interface{}) error {
	t, ok := r.pages[page]
	if !ok {
		return errors.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Page renders a complete page with the given status. Nothing is written when the
// template fails, so the caller can still send an error.
func (r *Renderer) Page(w http.ResponseWriter, status int, page string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, page, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
