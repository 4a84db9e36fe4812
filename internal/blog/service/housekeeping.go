package service

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/images"
	"github.com/aussiebroadwan/quill/internal/blog/store"
)

// ImageStore lists and deletes stored images (images.Store).
type ImageStore interface {
	List() ([]images.File, error)
	Clear(path string) error
}

// HousekeepingService periodically removes uploaded images that no post
// references. Uploads happen before createPost, so a client that never
// finishes the post leaves its image behind.
type HousekeepingService struct {
	Store    store.Store
	Images   ImageStore
	Logger   *slog.Logger
	Interval time.Duration

	// Grace is how old an unreferenced image must be before it is removed.
	Grace time.Duration
	Clock Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service. Non-positive
// interval defaults to 1 hour and non-positive grace to 24 hours.
func NewHousekeepingService(st store.Store, imgs ImageStore, logger *slog.Logger, interval, grace time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if grace <= 0 {
		grace = 24 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Images:   imgs,
		Logger:   logger,
		Interval: interval,
		Grace:    grace,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "grace", s.Grace)
}

// Stop blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes unreferenced images older than Grace and returns how many
// were removed. A failed delete is logged and does not stop the sweep.
func (s *HousekeepingService) Sweep(ctx context.Context) int {
	s.Logger.Info("starting housekeeping sweep")

	referenced, err := s.Store.Posts().ListImageURLs(ctx)
	if err != nil {
		s.Logger.Error("failed to list post images", "error", err)
		return 0
	}
	inUse := make(map[string]struct{}, len(referenced))
	for _, u := range referenced {
		inUse[normalizeImagePath(u)] = struct{}{}
	}

	files, err := s.Images.List()
	if err != nil {
		s.Logger.Error("failed to list stored images", "error", err)
		return 0
	}

	cutoff := s.Clock.now().Add(-s.Grace)
	removed := 0
	for _, f := range files {
		if _, ok := inUse[normalizeImagePath(f.Path)]; ok {
			continue
		}
		if f.ModTime.After(cutoff) {
			continue
		}
		if err := s.Images.Clear(f.Path); err != nil {
			s.Logger.Error("failed to remove orphaned image", "path", f.Path, "error", err)
			continue
		}
		s.Logger.Debug("removed orphaned image", "path", f.Path)
		removed++
	}

	s.Logger.Info("housekeeping sweep completed", "removed_images", removed)
	return removed
}

func normalizeImagePath(p string) string {
	return path.Clean(strings.TrimPrefix(strings.TrimSpace(p), "/"))
}
