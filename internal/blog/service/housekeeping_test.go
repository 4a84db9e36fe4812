package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/images"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, id := env.register(t)

	imgs, err := images.New(t.TempDir())
	require.NoError(t, err)

	save := func(name string, age time.Duration) string {
		p, err := imgs.Save(strings.NewReader("img"), name)
		require.NoError(t, err)
		mod := env.clock.Now().Add(-age)
		require.NoError(t, os.Chtimes(filepath.Join(imgs.Root(), strings.TrimPrefix(p, "images/")), mod, mod))
		return p
	}

	used := save("used.png", 72*time.Hour)
	env.createPost(t, id, "/"+used)
	orphan := save("orphan.png", 48*time.Hour)
	fresh := save("fresh.png", time.Hour)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(env.store, imgs, logger, time.Hour, 24*time.Hour)
	hk.Clock = env.clock.Now

	require.Equal(t, 1, hk.Sweep(ctx))

	files, err := imgs.List()
	require.NoError(t, err)
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	require.ElementsMatch(t, []string{used, fresh}, paths)
	require.NotContains(t, paths, orphan)

	// Nothing left to do.
	require.Equal(t, 0, hk.Sweep(ctx))
}

func TestHousekeepingStartStop(t *testing.T) {
	env := newTestEnv(t)
	imgs, err := images.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(env.store, imgs, logger, 0, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.Equal(t, 24*time.Hour, hk.Grace)

	hk.Start()
	hk.Stop()
}
