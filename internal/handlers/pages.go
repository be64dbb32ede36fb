package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"dhanesh.dev/internal/content"
	"dhanesh.dev/internal/nav"
	"dhanesh.dev/internal/render"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer *render.Renderer
	store    *content.Store
	items    []nav.Item
	logger   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(r *render.Renderer, store *content.Store, items []nav.Item, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		renderer: r,
		store:    store,
		items:    items,
		logger:   logger,
	}
}

// Serve returns the handler for page p
func (h *PageHandler) Serve(p render.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, p, http.StatusOK)
	}
}

// NotFound renders the not-found page inside the navigation shell
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, render.PageNotFound, http.StatusNotFound)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, p render.Page, status int) {
	site := h.store.Site()
	shell := nav.NewShell(site.Profile.Name, h.items, r.URL.Path, nav.ParseMenuState(r.URL.Query()))

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, p, shell, site); err != nil {
		h.logger.Error("render failed", zap.String("page", string(p)), zap.Error(err))

		buf.Reset()
		status = http.StatusInternalServerError
		if err := h.renderer.Render(&buf, render.PageError, shell, site); err != nil {
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing page", zap.String("page", string(p)), zap.Error(err))
	}
}
