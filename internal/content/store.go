package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"dhanesh.dev/internal/models"
)

const reloadDebounce = 300 * time.Millisecond

// Store holds the current site content. An empty path serves the embedded
// content and makes Reload a no-op.
type Store struct {
	mu     sync.RWMutex
	site   *models.Site
	path   string
	logger *zap.Logger
}

// NewStore loads content from path, or the embedded default when path is empty
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}
	if path == "" {
		s.site = Default()
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Site returns the current content snapshot. Callers must not mutate it.
func (s *Store) Site() *models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Path returns the override file being served, if any
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the override file. On error the previous content stays live.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := LoadFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
	return nil
}

// Watch reloads the content whenever the override file changes, until ctx
// is cancelled. The parent directory is watched so editor rename-on-save
// is picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	target := filepath.Clean(s.path)
	go func() {
		defer watcher.Close()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						s.logger.Warn("content reload failed", zap.String("path", s.path), zap.Error(err))
						return
					}
					s.logger.Info("content reloaded", zap.String("path", s.path))
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("content watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}
