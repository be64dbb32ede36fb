package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dhanesh.dev/internal/content"
	"dhanesh.dev/internal/middleware"
	"dhanesh.dev/internal/nav"
	"dhanesh.dev/internal/render"
	"dhanesh.dev/internal/services"
	"dhanesh.dev/internal/theme"
)

// Options configures the router
type Options struct {
	Store          *content.Store
	Renderer       *render.Renderer
	Theme          theme.Theme
	StaticDir      string
	ShowExperience bool
	Logger         *zap.Logger
}

// Route is a page route served by the router
type Route struct {
	Path string
	Page render.Page
}

// PageRoutes returns the page routes in navigation order
func PageRoutes(showExperience bool) []Route {
	routes := []Route{
		{Path: "/", Page: render.PageHome},
		{Path: "/about", Page: render.PageAbout},
		{Path: "/projects", Page: render.PageProjects},
		{Path: "/contact", Page: render.PageContact},
	}
	if showExperience {
		routes = append(routes, Route{Path: nav.ExperienceItem.Path, Page: render.PageExperience})
	}
	return routes
}

// NavItems returns the navigation entries matching PageRoutes
func NavItems(showExperience bool) []nav.Item {
	items := nav.DefaultItems()
	if showExperience {
		items = nav.WithExperience(items)
	}
	return items
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(opts Options) (http.Handler, error) {
	css, err := opts.Theme.CSS()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(chimw.GetHead)

	// Initialize services
	projectService := services.NewProjectService(opts.Store)

	// Initialize handlers
	pageHandler := NewPageHandler(opts.Renderer, opts.Store, NavItems(opts.ShowExperience), opts.Logger)
	projectHandler := NewProjectHandler(projectService, opts.Logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, opts.Logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(opts.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Get("/theme.css", StylesheetHandler(css, opts.Logger))

	// Pages
	for _, route := range PageRoutes(opts.ShowExperience) {
		r.Get(route.Path, pageHandler.Serve(route.Page))
	}
	r.NotFound(pageHandler.NotFound)

	return r, nil
}

// StylesheetHandler serves the pre-rendered theme stylesheet
func StylesheetHandler(css []byte, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := w.Write(css); err != nil {
			logger.Warn("error writing stylesheet", zap.Error(err))
		}
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
