package watch

import (
	"sync"
	"time"
)

// debouncer calls fire once the triggers stop for the given delay.
type debouncer struct {
	delay time.Duration
	fire  func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration, fire func()) *debouncer {
	return &debouncer{delay: delay, fire: fire}
}

// trigger restarts the quiet period.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// stop cancels a pending call; later triggers are ignored.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
