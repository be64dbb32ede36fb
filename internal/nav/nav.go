// Package nav models the navigation shell: the fixed route list, the
// selected entry and the mobile drawer toggle.
package nav

import (
	"net/url"
)

// Item is a navigation entry
type Item struct {
	Name string
	Path string
	Icon string
}

// Link is an Item as rendered for the current request
type Link struct {
	Item
	Selected bool
}

// DefaultItems returns the four routes in display order
func DefaultItems() []Item {
	return []Item{
		{Name: "Home", Path: "/", Icon: "home"},
		{Name: "About", Path: "/about", Icon: "person"},
		{Name: "Projects", Path: "/projects", Icon: "code"},
		{Name: "Contact", Path: "/contact", Icon: "mail"},
	}
}

// ExperienceItem is inserted after Projects when the experience page is enabled
var ExperienceItem = Item{Name: "Experience", Path: "/experience", Icon: "work"}

// WithExperience returns items with the experience entry placed after Projects
func WithExperience(items []Item) []Item {
	out := make([]Item, 0, len(items)+1)
	inserted := false
	for _, it := range items {
		out = append(out, it)
		if it.Path == "/projects" {
			out = append(out, ExperienceItem)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, ExperienceItem)
	}
	return out
}

// Shell is the navigation state of one rendered page
type Shell struct {
	Owner       string
	Items       []Item
	CurrentPath string
	Menu        MenuState
}

// NewShell builds the shell for the page at currentPath
func NewShell(owner string, items []Item, currentPath string, menu MenuState) *Shell {
	return &Shell{
		Owner:       owner,
		Items:       items,
		CurrentPath: currentPath,
		Menu:        menu,
	}
}

// Links returns the items in order, marking the one matching the current path
func (s *Shell) Links() []Link {
	links := make([]Link, len(s.Items))
	for i, it := range s.Items {
		links[i] = Link{Item: it, Selected: it.Path == s.CurrentPath}
	}
	return links
}

// Active returns the selected item, if any
func (s *Shell) Active() (Item, bool) {
	for _, it := range s.Items {
		if it.Path == s.CurrentPath {
			return it, true
		}
	}
	return Item{}, false
}

const (
	menuParam = "menu"
	menuOpen  = "open"
)

// MenuState is the mobile drawer's open flag. The zero value is closed.
// The server only decides the initial state (?menu=open); the rendered
// checkbox flips it in the browser, and navigation links carry no state so
// every navigation starts closed.
type MenuState struct {
	open bool
}

// ParseMenuState reads the drawer state from a request query
func ParseMenuState(q url.Values) MenuState {
	return MenuState{open: q.Get(menuParam) == menuOpen}
}

// IsOpen reports whether the drawer is shown
func (m MenuState) IsOpen() bool { return m.open }

// Toggle flips the state
func (m *MenuState) Toggle() { m.open = !m.open }

// Close resets the state
func (m *MenuState) Close() { m.open = false }
