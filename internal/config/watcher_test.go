package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStatic(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Section.CompanyName = "STATIC"
	assert.Equal(t, "STATIC", NewStatic(cfg).Config().Section.CompanyName)
}

func TestNewWatcher_InitialLoad(t *testing.T) {
	p := writeRaw(t, t.TempDir(), "config.yaml", "section:\n  companyName: ONE\n")

	w, err := NewWatcher(p)
	require.NoError(t, err)
	assert.Equal(t, "ONE", w.Config().Section.CompanyName)
	assert.Equal(t, int64(0), w.Reloads())
}

func TestNewWatcher_InvalidInitialFile(t *testing.T) {
	p := writeRaw(t, t.TempDir(), "config.yaml", "section: [")
	_, err := NewWatcher(p)
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := writeRaw(t, dir, "config.yaml", "section:\n  companyName: ONE\n")

	var mu sync.Mutex
	var seen []string
	w, err := NewWatcher(p, WithDebounce(10*time.Millisecond), WithOnChange(func(c CapsectionConfig) {
		mu.Lock()
		seen = append(seen, c.Section.CompanyName)
		mu.Unlock()
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(p, []byte("section:\n  companyName: TWO\n"), 0644))

	assert.Eventually(t, func() bool {
		return w.Config().Section.CompanyName == "TWO"
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.Contains(t, seen, "TWO")
	mu.Unlock()
}

func TestWatcher_KeepsPreviousOnBadReload(t *testing.T) {
	dir := t.TempDir()
	p := writeRaw(t, dir, "config.yaml", "section:\n  companyName: GOOD\n")

	w, err := NewWatcher(p, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(p, []byte("section: [broken"), 0644))
	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "GOOD", w.Config().Section.CompanyName)
	assert.Equal(t, int64(0), w.Reloads())
}

func TestWatcher_RunMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	p := writeRaw(t, dir, "config.yaml", "section: {}\n")
	w, err := NewWatcher(p)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))
	err = w.Run(context.Background())
	assert.Error(t, err)
}
