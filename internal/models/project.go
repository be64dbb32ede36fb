package models

// Project represents a portfolio project card
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Tags        []string `json:"tags" yaml:"tags"`
	GitHubURL   string   `json:"github_url" yaml:"github_url"`
	LiveURL     string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
}

// HasLiveDemo reports whether the project links to a running deployment
func (p Project) HasLiveDemo() bool {
	return p.LiveURL != ""
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
