package models

// Education is the single education record shown on the About page
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Years       string `json:"years" yaml:"years"`
	Degree      string `json:"degree" yaml:"degree"`
}

// Profile holds the owner's identity and biography
type Profile struct {
	Name      string    `json:"name" yaml:"name"`
	Greeting  string    `json:"greeting" yaml:"greeting"`
	Intro     string    `json:"intro" yaml:"intro"`
	Bio       string    `json:"bio" yaml:"bio"`
	AvatarURL string    `json:"avatar_url" yaml:"avatar_url"`
	Education Education `json:"education" yaml:"education"`
}

// ContactLink is an outbound link on the Contact page
type ContactLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	Icon  string `json:"icon" yaml:"icon"`
}

// ContactSection is the Contact page content
type ContactSection struct {
	Lead  string        `json:"lead" yaml:"lead"`
	Links []ContactLink `json:"links" yaml:"links"`
}

// Site is the complete literal content of the portfolio
type Site struct {
	Profile     Profile        `json:"profile" yaml:"profile"`
	Projects    []Project      `json:"projects" yaml:"projects"`
	Experiences []Experience   `json:"experiences" yaml:"experiences"`
	Contact     ContactSection `json:"contact" yaml:"contact"`
}
