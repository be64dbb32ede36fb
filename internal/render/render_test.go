package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhanesh.dev/internal/content"
	"dhanesh.dev/internal/models"
	"dhanesh.dev/internal/nav"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	clock := func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	r, err := New(WithClock(clock))
	require.NoError(t, err)
	return r
}

func renderPage(t *testing.T, r *Renderer, p Page, path string, menu nav.MenuState, site *models.Site) string {
	t.Helper()
	shell := nav.NewShell(site.Profile.Name, nav.DefaultItems(), path, menu)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p, shell, site))
	return buf.String()
}

func TestRenderHeadings(t *testing.T) {
	r := newTestRenderer(t)
	site := content.Default()

	tests := []struct {
		page    Page
		path    string
		heading string
	}{
		{PageHome, "/", "Hi there,"},
		{PageAbout, "/about", "About Me"},
		{PageProjects, "/projects", "My Projects"},
		{PageContact, "/contact", "Contact Me"},
		{PageExperience, "/experience", "Work Experience"},
		{PageNotFound, "/missing", "Page not found"},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			out := renderPage(t, r, tt.page, tt.path, nav.MenuState{}, site)
			assert.Contains(t, out, tt.heading)
			assert.Contains(t, out, "&copy; 2025 Pappala Dhanesh")
			assert.Contains(t, out, `href="/theme.css"`)
		})
	}
}

func TestRenderHomeGreeting(t *testing.T) {
	r := newTestRenderer(t)
	out := renderPage(t, r, PageHome, "/", nav.MenuState{}, content.Default())

	assert.Contains(t, out, `<span class="gradient">I'm&nbsp;Pappala Dhanesh</span>`)
	assert.Contains(t, out, `src="/static/img/dhanesh.jpeg"`)
	assert.Contains(t, out, "Explore My Work")
	assert.Contains(t, out, "animation: rise-in 700ms")
}

func TestRenderProjectCards(t *testing.T) {
	r := newTestRenderer(t)
	site := content.Default()
	out := renderPage(t, r, PageProjects, "/projects", nav.MenuState{}, site)

	assert.Equal(t, len(site.Projects), strings.Count(out, `class="card project-card"`))
	for _, p := range site.Projects {
		assert.Contains(t, out, `href="`+p.GitHubURL+`"`)
	}
	assert.NotContains(t, out, "Live Demo")
	assert.Contains(t, out, `<span class="chip">Tailwind</span>`)
}

func TestRenderLiveDemoLink(t *testing.T) {
	r := newTestRenderer(t)
	site := content.Default()
	site.Projects = []models.Project{{
		ID:        "demo",
		Title:     "Demo",
		GitHubURL: "https://github.com/example/demo",
		LiveURL:   "https://demo.example.com",
	}}
	out := renderPage(t, r, PageProjects, "/projects", nav.MenuState{}, site)
	assert.Contains(t, out, `href="https://demo.example.com"`)
	assert.Contains(t, out, "Live Demo")
}

func TestRenderShell(t *testing.T) {
	r := newTestRenderer(t)
	out := renderPage(t, r, PageAbout, "/about", nav.MenuState{}, content.Default())

	// Sidebar and drawer each carry the full list.
	assert.Equal(t, 2*4, strings.Count(out, `class="nav-link`))
	assert.Equal(t, 2, strings.Count(out, `class="nav-link selected" href="/about"`))
	assert.Contains(t, out, `<label class="menu-toggle" for="menu-state"`)
	assert.Contains(t, out, `<label class="backdrop" for="menu-state"`)
	assert.Contains(t, out, `<nav class="drawer" id="menu"`)
	assert.NotContains(t, out, "checked")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "animation: slide-in-left 450ms")

	sidebar := out[strings.Index(out, `<nav class="sidebar"`):]
	home := strings.Index(sidebar, `href="/"`)
	about := strings.Index(sidebar, `href="/about"`)
	projects := strings.Index(sidebar, `href="/projects"`)
	contact := strings.Index(sidebar, `href="/contact"`)
	assert.True(t, home < about && about < projects && projects < contact)
}

func TestRenderOpenMenu(t *testing.T) {
	r := newTestRenderer(t)
	var open nav.MenuState
	open.Toggle()
	out := renderPage(t, r, PageContact, "/contact", open, content.Default())

	assert.Contains(t, out, `aria-controls="menu" checked>`)
	assert.Contains(t, out, `<label class="menu-toggle" for="menu-state"`)
}

func TestRenderContactLinks(t *testing.T) {
	r := newTestRenderer(t)
	out := renderPage(t, r, PageContact, "/contact", nav.MenuState{}, content.Default())

	assert.Contains(t, out, `href="mailto:dhaneshpappala@gmail.com"`)
	assert.Contains(t, out, `href="https://github.com/pappaladhanesh"`)
	assert.Contains(t, out, `href="https://www.linkedin.com/in/dhanesh-pappala-4b02ab315"`)
}

func TestRenderNotFoundOmitsPath(t *testing.T) {
	r := newTestRenderer(t)
	out := renderPage(t, r, PageNotFound, "/some/missing/page", nav.MenuState{}, content.Default())
	assert.Contains(t, out, "The page you are looking for does not exist.")
	assert.NotContains(t, out, "/some/missing/page")
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	err := r.Render(&buf, Page("nope"), nav.NewShell("x", nil, "/", nav.MenuState{}), content.Default())
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
