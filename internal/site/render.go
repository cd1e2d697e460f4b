// Package site renders the portfolio page from its content, exports it as
// static files and serves it for local preview.
package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rvrdev/portfolio/internal/content"
	"github.com/rvrdev/portfolio/internal/viewstate"
	"github.com/rvrdev/portfolio/web"
)

const (
	IndexTemplate    = "index.html.tmpl"
	NotFoundTemplate = "404.html.tmpl"
)

// Options controls how URLs inside the page are built.
type Options struct {
	// BasePath prefixes every URL, e.g. "/portfolio". Empty for the root.
	BasePath string
	// BuildID is appended to asset URLs so a new export busts caches.
	BuildID string
	// LogLevel is handed to the in-browser bundle.
	LogLevel string
}

// Renderer executes the page templates against the site content.
type Renderer struct {
	tmpl *template.Template
	site *content.Site
	opts Options
	now  func() time.Time
}

// PageData is the template context.
type PageData struct {
	Site     *content.Site
	Sections []viewstate.Section
	Year     int
	LogLevel string
}

// NewRenderer parses the embedded templates.
func NewRenderer(site *content.Site, opts Options) (*Renderer, error) {
	return newRenderer(web.FS, site, opts)
}

func newRenderer(fsys fs.FS, site *content.Site, opts Options) (*Renderer, error) {
	r := &Renderer{site: site, opts: opts, now: time.Now}
	funcs := template.FuncMap{
		"asset": r.assetURL,
		"home":  func() string { return r.opts.BasePath + "/" },
		"join":  strings.Join,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// NewBuildID returns a short random identifier for an export.
func NewBuildID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Template exposes the parsed template set.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Data builds the template context for one render.
func (r *Renderer) Data() PageData {
	return PageData{
		Site:     r.site,
		Sections: viewstate.Sections(),
		Year:     r.now().Year(),
		LogLevel: r.opts.LogLevel,
	}
}

// Page renders the portfolio page.
func (r *Renderer) Page(w io.Writer) error {
	return r.execute(w, IndexTemplate)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.execute(w, NotFoundTemplate)
}

func (r *Renderer) execute(w io.Writer, name string) error {
	if err := r.tmpl.ExecuteTemplate(w, name, r.Data()); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) assetURL(name string) string {
	u := r.opts.BasePath + "/static/" + name
	if r.opts.BuildID != "" {
		u += "?v=" + r.opts.BuildID
	}
	return u
}
