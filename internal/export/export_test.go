package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dhanesh.dev/internal/content"
	"dhanesh.dev/internal/nav"
	"dhanesh.dev/internal/render"
	"dhanesh.dev/internal/theme"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	staticDir := filepath.Join(root, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "img"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "img", "MyBlog.png"), []byte("png"), 0644))

	renderer, err := render.New()
	require.NoError(t, err)

	out := filepath.Join(root, "public")
	res, err := Run(Options{
		OutputDir: out,
		StaticDir: staticDir,
		Pages: []Page{
			{Path: "/", Page: render.PageHome},
			{Path: "/about", Page: render.PageAbout},
			{Path: "/projects", Page: render.PageProjects},
			{Path: "/contact", Page: render.PageContact},
		},
		NavItems: nav.DefaultItems(),
		Site:     content.Default(),
		Renderer: renderer,
		Theme:    theme.Default(),
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Pages)
	assert.Equal(t, 1, res.Assets)

	for path, heading := range map[string]string{
		"index.html":          "Hi there,",
		"about/index.html":    "About Me",
		"projects/index.html": "My Projects",
		"contact/index.html":  "Contact Me",
		"404.html":            "Page not found",
	} {
		data, err := os.ReadFile(filepath.Join(out, path))
		require.NoError(t, err, path)
		assert.Contains(t, string(data), heading, path)
	}

	about, err := os.ReadFile(filepath.Join(out, "about", "index.html"))
	require.NoError(t, err)
	// The drawer opens from a checkbox, so it works without a server.
	assert.Contains(t, string(about), `<input class="menu-state" type="checkbox" id="menu-state"`)
	assert.Contains(t, string(about), `<label class="menu-toggle" for="menu-state"`)
	assert.Contains(t, string(about), `<label class="backdrop" for="menu-state"`)
	assert.NotContains(t, string(about), "?menu=open")

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(notFound), "/404")

	css, err := os.ReadFile(filepath.Join(out, "theme.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".menu-state:checked ~ .drawer")

	assert.FileExists(t, filepath.Join(out, "static", "img", "MyBlog.png"))
}

func TestRunRefusesUnsafeOutput(t *testing.T) {
	_, err := Run(Options{OutputDir: "."})
	assert.Error(t, err)
}
