// Package content loads and validates the literal portfolio content.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"dhanesh.dev/internal/models"
)

//go:embed default.yaml
var defaultContent []byte

// ErrInvalidContent is returned when a content document fails validation
var ErrInvalidContent = errors.New("invalid content")

// Default returns the content compiled into the binary
func Default() *models.Site {
	site, err := Parse(defaultContent)
	if err != nil {
		panic("embedded content is invalid: " + err.Error())
	}
	return site
}

// Parse decodes and validates a YAML content document
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// LoadFile reads a content document from disk
func LoadFile(path string) (*models.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the invariants the pages rely on
func Validate(site *models.Site) error {
	if site.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}

	ids := make(map[string]bool, len(site.Projects))
	for i, p := range site.Projects {
		if p.ID == "" {
			return fmt.Errorf("%w: project %d has no id", ErrInvalidContent, i)
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate project id %q", ErrInvalidContent, p.ID)
		}
		ids[p.ID] = true

		if p.Title == "" {
			return fmt.Errorf("%w: project %q has no title", ErrInvalidContent, p.ID)
		}
		if err := checkURL(p.GitHubURL); err != nil {
			return fmt.Errorf("%w: project %q repository: %v", ErrInvalidContent, p.ID, err)
		}
		if p.LiveURL != "" {
			if err := checkURL(p.LiveURL); err != nil {
				return fmt.Errorf("%w: project %q live demo: %v", ErrInvalidContent, p.ID, err)
			}
		}
	}

	for _, l := range site.Contact.Links {
		if err := checkURL(l.URL); err != nil {
			return fmt.Errorf("%w: contact link %q: %v", ErrInvalidContent, l.Label, err)
		}
	}

	return nil
}

// checkURL accepts absolute http(s) and mailto links
func checkURL(raw string) error {
	if raw == "" {
		return errors.New("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("url %q has no host", raw)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("url %q has no address", raw)
		}
	default:
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	return nil
}
