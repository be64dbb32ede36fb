// Package theme defines the portfolio's dark theme and renders it to CSS.
package theme

// Shade is a main color with its light and dark variants
type Shade struct {
	Main  string
	Light string
	Dark  string
}

// Palette holds the theme colors
type Palette struct {
	Primary        Shade
	Secondary      Shade
	Background     string
	Paper          string
	TextPrimary    string
	TextSecondary  string
	Divider        string
	ActionSelected string
	ActionHover    string
}

// Typography holds the font stack and heading weights (h1..h5)
type Typography struct {
	FontFamily     string
	HeadingWeights [5]int
}

// Breakpoints in pixels; the navigation shell collapses below MD
type Breakpoints struct {
	SM int
	MD int
}

// Components holds per-component style overrides
type Components struct {
	ButtonRadius     int
	AppBarBackground string
	AppBarBlur       int
	PaperTransition  string
}

// Theme is the static configuration consumed by every page
type Theme struct {
	Palette      Palette
	Typography   Typography
	BorderRadius int
	Breakpoints  Breakpoints
	Components   Components
	DrawerWidth  int
}

// Default returns the portfolio's dark theme
func Default() Theme {
	return Theme{
		Palette: Palette{
			Primary:        Shade{Main: "#bb86fc", Light: "#eebcff", Dark: "#8a56c8"},
			Secondary:      Shade{Main: "#03dac6", Light: "#66fff9", Dark: "#00a896"},
			Background:     "#121212",
			Paper:          "#1e1e1e",
			TextPrimary:    "#e1e1e1",
			TextSecondary:  "#a0a0a0",
			Divider:        "rgba(255, 255, 255, 0.12)",
			ActionSelected: "rgba(255, 255, 255, 0.16)",
			ActionHover:    "rgba(255, 255, 255, 0.08)",
		},
		Typography: Typography{
			FontFamily:     `"Poppins", "Roboto", "Helvetica", "Arial", sans-serif`,
			HeadingWeights: [5]int{700, 600, 600, 500, 500},
		},
		BorderRadius: 8,
		Breakpoints:  Breakpoints{SM: 600, MD: 900},
		Components: Components{
			ButtonRadius:     20,
			AppBarBackground: "rgba(18, 18, 18, 0.85)",
			AppBarBlur:       10,
			PaperTransition:  "box-shadow 300ms cubic-bezier(0.4, 0, 0.2, 1) 0ms",
		},
		DrawerWidth: 260,
	}
}
