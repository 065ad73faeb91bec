// Package app owns the application state: a single event loop that polls
// the host on an interval, holds the one current snapshot, and runs all
// UI-triggered work in submission order.
package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/virtray/virtray/internal/host"
	"github.com/virtray/virtray/internal/logger"
	"github.com/virtray/virtray/internal/snapshot"
)

// Fetcher samples the host. Satisfied by *host.Client.
type Fetcher interface {
	FetchVMs() ([]host.RawVM, error)
}

// Loop is the single-threaded task queue at the center of the app. The
// poll timer, menu clicks, and post-action refreshes are all just tasks on
// this queue, so snapshot builds never interleave and the current snapshot
// is always replaced wholesale, in call order.
type Loop struct {
	fetcher  Fetcher
	builder  *snapshot.Builder
	interval time.Duration

	tasks   chan func()
	done    chan struct{}
	stopped sync.Once

	current atomic.Pointer[snapshot.Snapshot]

	// refreshQueued coalesces on-demand polls: at most one is pending at
	// any time, on top of whatever the timer does.
	refreshQueued atomic.Bool

	subscribers []func(*snapshot.Snapshot)
}

// New creates a loop polling via fetcher every interval.
func New(fetcher Fetcher, builder *snapshot.Builder, interval time.Duration) *Loop {
	l := &Loop{
		fetcher:  fetcher,
		builder:  builder,
		interval: interval,
		tasks:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
	l.current.Store(&snapshot.Snapshot{Err: "no data yet", Filter: builder.Pattern()})
	return l
}

// OnSnapshot registers a subscriber invoked on the loop goroutine with
// every new snapshot. Must be called before Run.
func (l *Loop) OnSnapshot(fn func(*snapshot.Snapshot)) {
	l.subscribers = append(l.subscribers, fn)
}

// Run processes the poll timer and queued tasks until Stop. It performs an
// immediate initial poll, then blocks; run it on its own goroutine.
func (l *Loop) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.poll()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.poll()
		case task := <-l.tasks:
			task()
		}
	}
}

// Stop ends the loop. Queued tasks that have not run yet are dropped; no
// in-flight host call is cancelled.
func (l *Loop) Stop() {
	l.stopped.Do(func() { close(l.done) })
}

// Post queues fn onto the loop. Safe to call from any goroutine; drops the
// task if the loop is stopped.
func (l *Loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// RefreshNow queues an immediate out-of-cycle poll. Multiple calls before
// the poll runs coalesce into one.
func (l *Loop) RefreshNow() {
	if !l.refreshQueued.CompareAndSwap(false, true) {
		return
	}
	l.Post(func() {
		l.refreshQueued.Store(false)
		l.poll()
	})
}

// Current returns the current snapshot. The snapshot itself is immutable;
// reads from any goroutine see either the old or the new value, never a
// partial one.
func (l *Loop) Current() *snapshot.Snapshot {
	return l.current.Load()
}

// poll runs one query cycle on the loop goroutine.
func (l *Loop) poll() {
	raw, err := l.fetcher.FetchVMs()
	if err != nil {
		logger.WithError(err).Warnf("host query failed")
	}

	snap := l.builder.Build(raw, err)
	l.current.Store(snap)

	for _, fn := range l.subscribers {
		fn(snap)
	}
}
