package services

import (
	"errors"
	"fmt"

	"dhanesh.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// SiteSource supplies the current site content
type SiteSource interface {
	Site() *models.Site
}

// ProjectService handles project-related operations
type ProjectService struct {
	source SiteSource
}

// NewProjectService creates a new ProjectService
func NewProjectService(source SiteSource) *ProjectService {
	return &ProjectService{source: source}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.source.Site().Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	projects := s.source.Site().Projects
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
