package theme

import (
	"fmt"
	"strconv"
	"time"
)

// Easing curves. Spring transitions have no CSS equivalent; springEasing
// overshoots slightly to approximate a damped spring.
const (
	easeInOut    = "cubic-bezier(0.42, 0, 0.58, 1)"
	easeOut      = "cubic-bezier(0, 0, 0.58, 1)"
	springEasing = "cubic-bezier(0.34, 1.36, 0.64, 1)"
)

// Variant is an entrance animation played once when an element is rendered
type Variant struct {
	// Keyframes names a @keyframes rule emitted by Theme.CSS
	Keyframes       string
	Duration        time.Duration
	Easing          string
	DelayChildren   time.Duration
	StaggerChildren time.Duration
}

var (
	// Sidebar slides in from the left edge.
	Sidebar = Variant{Keyframes: "slide-in-left", Duration: 450 * time.Millisecond, Easing: easeInOut}

	// NavItem staggers the navigation links after the sidebar.
	NavItem = Variant{
		Keyframes:       "nudge-in-left",
		Duration:        300 * time.Millisecond,
		Easing:          easeOut,
		DelayChildren:   120 * time.Millisecond,
		StaggerChildren: 60 * time.Millisecond,
	}

	// HomeItem is the spring rise used on the landing page.
	HomeItem = Variant{
		Keyframes:       "rise-in",
		Duration:        700 * time.Millisecond,
		Easing:          springEasing,
		DelayChildren:   180 * time.Millisecond,
		StaggerChildren: 160 * time.Millisecond,
	}

	// Card is the spring rise used for project cards and page sections.
	Card = Variant{
		Keyframes:       "rise-in",
		Duration:        600 * time.Millisecond,
		Easing:          springEasing,
		StaggerChildren: 120 * time.Millisecond,
	}

	// Page fades the whole page content up.
	Page = Variant{Keyframes: "fade-up", Duration: 600 * time.Millisecond, Easing: easeOut}
)

// Delay returns when the i-th child starts animating
func (v Variant) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return v.DelayChildren + time.Duration(i)*v.StaggerChildren
}

// Style returns the inline animation declaration for the i-th child
func (v Variant) Style(i int) string {
	return fmt.Sprintf("animation: %s %s %s %s both;",
		v.Keyframes, cssDuration(v.Duration), v.Easing, cssDuration(v.Delay(i)))
}

func cssDuration(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
