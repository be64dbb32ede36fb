package models

// Experience is a single entry on the experience timeline
type Experience struct {
	Years       string   `json:"years" yaml:"years"`
	Title       string   `json:"title" yaml:"title"`
	Company     string   `json:"company" yaml:"company"`
	Description string   `json:"description" yaml:"description"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	// Color is the palette key of the timeline dot: "primary" or "secondary"
	Color string `json:"color" yaml:"color"`
}
