package app

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/virtray/virtray/internal/host"
	"github.com/virtray/virtray/internal/snapshot"
)

// fakeFetcher returns queued results, one per poll.
type fakeFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	polls   int
}

type fetchResult struct {
	vms []host.RawVM
	err error
}

func (f *fakeFetcher) FetchVMs() ([]host.RawVM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if len(f.results) == 0 {
		return nil, nil
	}
	res := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return res.vms, res.err
}

func (f *fakeFetcher) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

func newTestLoop(t *testing.T, fetcher *fakeFetcher) (*Loop, chan *snapshot.Snapshot) {
	t.Helper()
	builder, err := snapshot.NewBuilder("*")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	l := New(fetcher, builder, time.Hour) // timer effectively off in tests
	snaps := make(chan *snapshot.Snapshot, 16)
	l.OnSnapshot(func(s *snapshot.Snapshot) { snaps <- s })

	go l.Run()
	t.Cleanup(l.Stop)
	return l, snaps
}

func waitSnapshot(t *testing.T, snaps chan *snapshot.Snapshot) *snapshot.Snapshot {
	t.Helper()
	select {
	case s := <-snaps:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestLoop_InitialPoll(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{vms: []host.RawVM{{Name: "vm1", StateCode: host.StateRunning}}},
	}}
	l, snaps := newTestLoop(t, fetcher)

	snap := waitSnapshot(t, snaps)
	if snap.Failed() {
		t.Fatalf("unexpected error snapshot: %s", snap.Err)
	}
	if len(snap.VMs) != 1 || snap.VMs[0].Name != "vm1" {
		t.Errorf("VMs = %v, want [vm1]", snap.VMs)
	}
	if l.Current() != snap {
		t.Error("Current() must return the snapshot just published")
	}
}

func TestLoop_ErrorSnapshotThenRecovery(t *testing.T) {
	fetcher := &fakeFetcher{results: []fetchResult{
		{err: fmt.Errorf("host unreachable")},
		{vms: []host.RawVM{{Name: "vm1", StateCode: host.StateRunning}}},
	}}
	l, snaps := newTestLoop(t, fetcher)

	first := waitSnapshot(t, snaps)
	if !first.Failed() {
		t.Fatal("expected error snapshot first")
	}

	l.RefreshNow()
	second := waitSnapshot(t, snaps)
	if second.Failed() {
		t.Fatalf("expected recovery, got error: %s", second.Err)
	}
	if l.Current() != second {
		t.Error("current snapshot must be replaced wholesale by the new poll")
	}
}

func TestLoop_RefreshCoalescing(t *testing.T) {
	block := make(chan struct{})
	fetcher := &fakeFetcher{}
	l, snaps := newTestLoop(t, fetcher)

	waitSnapshot(t, snaps) // initial poll done

	// Occupy the loop so queued refreshes pile up behind this task.
	l.Post(func() { <-block })

	for i := 0; i < 5; i++ {
		l.RefreshNow()
	}
	close(block)

	waitSnapshot(t, snaps) // the one coalesced refresh
	// Give any extra (incorrect) refreshes a chance to run.
	time.Sleep(50 * time.Millisecond)

	if got := fetcher.pollCount(); got != 2 {
		t.Errorf("poll count = %d, want 2 (initial + one coalesced refresh)", got)
	}
}

func TestLoop_TasksRunInOrder(t *testing.T) {
	fetcher := &fakeFetcher{}
	l, snaps := newTestLoop(t, fetcher)
	waitSnapshot(t, snaps)

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			if i == 4 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestLoop_PostAfterStopDoesNotBlock(t *testing.T) {
	fetcher := &fakeFetcher{}
	l, snaps := newTestLoop(t, fetcher)
	waitSnapshot(t, snaps)

	l.Stop()

	done := make(chan struct{})
	go func() {
		l.Post(func() {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Post blocked after Stop")
	}
}
