// Package export writes the portfolio out as a static site.
package export

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"dhanesh.dev/internal/models"
	"dhanesh.dev/internal/nav"
	"dhanesh.dev/internal/render"
	"dhanesh.dev/internal/theme"
)

// Page is a page to export at Path
type Page struct {
	Path string
	Page render.Page
}

// Options configures an export
type Options struct {
	OutputDir string
	StaticDir string
	Pages     []Page
	NavItems  []nav.Item
	Site      *models.Site
	Renderer  *render.Renderer
	Theme     theme.Theme
	Logger    *zap.Logger
}

// Result summarizes an export
type Result struct {
	Pages  int
	Assets int
}

// Run renders every page to <out>/<path>/index.html, writes 404.html and
// theme.css, and copies the static directory to <out>/static. The output
// directory is replaced.
func Run(opts Options) (*Result, error) {
	out := opts.OutputDir
	if out == "" || out == "/" || out == "." {
		return nil, fmt.Errorf("refusing to export into %q", out)
	}

	if err := os.RemoveAll(out); err != nil {
		return nil, fmt.Errorf("failed to clean output directory: %w", err)
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &Result{}
	owner := opts.Site.Profile.Name

	for _, p := range opts.Pages {
		shell := nav.NewShell(owner, opts.NavItems, p.Path, nav.MenuState{})
		target := filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(p.Path, "/")), "index.html")
		if err := renderTo(target, opts.Renderer, p.Page, shell, opts.Site); err != nil {
			return nil, err
		}
		opts.Logger.Debug("exported page", zap.String("path", p.Path), zap.String("file", target))
		res.Pages++
	}

	notFound := nav.NewShell(owner, opts.NavItems, "/404", nav.MenuState{})
	if err := renderTo(filepath.Join(out, "404.html"), opts.Renderer, render.PageNotFound, notFound, opts.Site); err != nil {
		return nil, err
	}

	css, err := opts.Theme.CSS()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(out, "theme.css"), css, 0644); err != nil {
		return nil, fmt.Errorf("failed to write theme.css: %w", err)
	}

	if opts.StaticDir != "" {
		n, err := copyDir(opts.StaticDir, filepath.Join(out, "static"))
		if err != nil {
			return nil, err
		}
		res.Assets = n
	}

	return res, nil
}

func renderTo(path string, r *render.Renderer, p render.Page, shell *nav.Shell, site *models.Site) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, p, shell, site); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyDir copies src into dst and returns the number of files copied.
// A missing src is not an error.
func copyDir(src, dst string) (int, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
