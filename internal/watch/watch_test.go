package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

// startWatcher runs w until the test ends.
func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-errc)
	})
	// Give the watcher time to register directories.
	time.Sleep(100 * time.Millisecond)
}

func TestRun_RebuildsOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guide"), 0o750))

	var builds atomic.Int32
	startWatcher(t, New(dir, func(context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(testDebounce)))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "guide", "a.md"), []byte("# A"), 0o600))
	assert.Eventually(t, func() bool { return builds.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_WatchesNewDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var builds atomic.Int32
	startWatcher(t, New(dir, func(context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(testDebounce)))

	sub := filepath.Join(dir, "new")
	require.NoError(t, os.Mkdir(sub, 0o750))
	assert.Eventually(t, func() bool { return builds.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	seen := builds.Load()
	require.NoError(t, os.WriteFile(filepath.Join(sub, "page.md"), []byte("# P"), 0o600))
	assert.Eventually(t, func() bool { return builds.Load() > seen }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_IgnoresOutputAndScratchFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "build")
	require.NoError(t, os.Mkdir(out, 0o750))

	var builds atomic.Int32
	startWatcher(t, New(dir, func(context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(testDebounce), WithIgnore(out)))

	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".a.md.swp"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md~"), []byte("x"), 0o600))

	assert.Never(t, func() bool { return builds.Load() > 0 }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestRun_FailedBuildKeepsWatching(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var builds atomic.Int32
	startWatcher(t, New(dir, func(context.Context) error {
		builds.Add(1)
		return errors.New("broken page")
	}, WithDebounce(testDebounce)))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o600))
	assert.Eventually(t, func() bool { return builds.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("# B"), 0o600))
	assert.Eventually(t, func() bool { return builds.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_MissingDirectory(t *testing.T) {
	t.Parallel()

	w := New(filepath.Join(t.TempDir(), "missing"), func(context.Context) error { return nil })
	err := w.Run(context.Background())
	assert.ErrorIs(t, err, ErrWatch)
}

func TestRebuildLoop_DefersDuringBuild(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{}, 8)
	var builds atomic.Int32

	w := New(t.TempDir(), func(context.Context) error {
		builds.Add(1)
		started <- struct{}{}
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	requests := make(chan struct{}, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.rebuildLoop(ctx, requests)
	}()

	request(requests)
	<-started

	// Three changes during the running build queue one follow-up.
	request(requests)
	request(requests)
	request(requests)

	release <- struct{}{}
	<-started
	assert.Equal(t, int32(2), builds.Load())

	release <- struct{}{}
	assert.Never(t, func() bool { return builds.Load() > 2 }, 100*time.Millisecond, 10*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	d := newDebouncer(30*time.Millisecond, func() { fired.Add(1) })

	for i := 0; i < 5; i++ {
		d.trigger()
		time.Sleep(5 * time.Millisecond)
	}
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return fired.Load() > 1 }, 100*time.Millisecond, 10*time.Millisecond)

	d.trigger()
	d.stop()
	d.trigger()
	assert.Never(t, func() bool { return fired.Load() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestIgnored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := New(root, nil, WithIgnore(filepath.Join(root, "build")))

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "page.md"), false},
		{filepath.Join(root, "guide", "setup.md"), false},
		{filepath.Join(root, "build"), true},
		{filepath.Join(root, "build", "index.html"), true},
		{filepath.Join(root, "builder.md"), false},
		{filepath.Join(root, ".git"), true},
		{filepath.Join(root, ".page.md.swp"), true},
		{filepath.Join(root, "page.md.swx"), true},
		{filepath.Join(root, "page.md~"), true},
		{filepath.Join(root, "#page.md#"), true},
		{filepath.Join(root, "4913"), true},
		{filepath.Join(root, "Thumbs.db"), true},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, w.ignored(tt.path))
		})
	}
}
