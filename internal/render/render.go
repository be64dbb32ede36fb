// Package render turns portfolio content into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"dhanesh.dev/internal/models"
	"dhanesh.dev/internal/nav"
	"dhanesh.dev/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page identifies a page template
type Page string

const (
	PageHome       Page = "home"
	PageAbout      Page = "about"
	PageProjects   Page = "projects"
	PageContact    Page = "contact"
	PageExperience Page = "experience"
	PageNotFound   Page = "notfound"
	PageError      Page = "error"
)

// Pages lists every page template
var Pages = []Page{PageHome, PageAbout, PageProjects, PageContact, PageExperience, PageNotFound, PageError}

var titles = map[Page]string{
	PageHome:       "Home",
	PageAbout:      "About",
	PageProjects:   "Projects",
	PageContact:    "Contact",
	PageExperience: "Experience",
	PageNotFound:   "Not Found",
	PageError:      "Error",
}

// variants maps the names used by the templates' anim function
var variants = map[string]theme.Variant{
	"sidebar": theme.Sidebar,
	"nav":     theme.NavItem,
	"home":    theme.HomeItem,
	"card":    theme.Card,
	"page":    theme.Page,
}

var icons = map[string]string{
	"home":     "⌂",
	"person":   "☺",
	"code":     "</>",
	"mail":     "✉",
	"work":     "⚒",
	"github":   "⎇",
	"linkedin": "in",
}

// PageData is what every page template receives
type PageData struct {
	Title         string
	Shell         *nav.Shell
	Site          *models.Site
	Year          int
	StylesheetURL string
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages         map[Page]*template.Template
	md            goldmark.Markdown
	stylesheetURL string
	now           func() time.Time
}

// Option configures a Renderer
type Option func(*Renderer)

// WithStylesheetURL sets the href of the theme stylesheet
func WithStylesheetURL(u string) Option {
	return func(r *Renderer) { r.stylesheetURL = u }
}

// WithClock overrides the clock used for the copyright year
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New parses the layout once and clones it for every page
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[Page]*template.Template, len(Pages)),
		md: goldmark.New(
			goldmark.WithExtensions(extension.Typographer, extension.Linkify),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		stylesheetURL: "/theme.css",
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	base, err := template.New("layout").Funcs(r.funcs()).ParseFS(templateFS, "templates/layout.html", "templates/shell.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	for _, p := range Pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", p, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(p)+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p, err)
		}
		r.pages[p] = t
	}

	return r, nil
}

// Render writes page p to w. Output is buffered so a failed execution
// never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, p Page, shell *nav.Shell, site *models.Site) error {
	t, ok := r.pages[p]
	if !ok {
		return fmt.Errorf("unknown page %q", p)
	}

	data := PageData{
		Title:         titles[p],
		Shell:         shell,
		Site:          site,
		Year:          r.now().Year(),
		StylesheetURL: r.stylesheetURL,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", p, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.markdown,
		"anim":     anim,
		"icon":     func(name string) string { return icons[name] },
		"inc":      func(i int) int { return i + 1 },
	}
}

// markdown renders content text. Raw HTML in the source is dropped by
// goldmark's default (unsafe disabled) renderer.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func anim(name string, i int) (template.CSS, error) {
	v, ok := variants[name]
	if !ok {
		return "", fmt.Errorf("unknown animation %q", name)
	}
	return template.CSS(v.Style(i)), nil
}
