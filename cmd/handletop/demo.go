package main

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	oshandle "github.com/wippyai/os-handle"
	"github.com/wippyai/os-handle/track"
)

// Synthetic categories for the demo workload. Raw values come from a
// monotonic counter and release is a no-op; only the ownership accounting is
// real.
type noopRelease struct{}

func (noopRelease) Release(uint64) {}

type (
	DemoFile struct {
		oshandle.NullSentinel[uint64]
		noopRelease
	}
	DemoSocket struct {
		oshandle.NullSentinel[uint64]
		noopRelease
	}
	DemoProcess struct {
		oshandle.NullSentinel[uint64]
		noopRelease
	}
	DemoEvent struct {
		oshandle.NullSentinel[uint64]
		noopRelease
	}
)

var rawCounter atomic.Uint64

func nextRaw() uint64 {
	return rawCounter.Add(1)
}

// workload churns handles through the default tracker from several
// goroutines. Roughly one in twenty-five handles is deliberately never
// closed, so the live counts drift upward and the leak report has something
// to say.
type workload struct {
	stop chan struct{}
	wg   sync.WaitGroup
}

func startWorkload(workers int) *workload {
	w := &workload{stop: make(chan struct{})}
	for i := 0; i < workers; i++ {
		w.wg.Add(1)
		go w.churn()
	}
	return w
}

func (w *workload) churn() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		switch rand.IntN(4) {
		case 0:
			holdOne[DemoFile](w.stop)
		case 1:
			holdOne[DemoSocket](w.stop)
		case 2:
			holdOne[DemoProcess](w.stop)
		case 3:
			holdOne[DemoEvent](w.stop)
		}
	}
}

func holdOne[T oshandle.Traits[uint64]](stop <-chan struct{}) {
	o := track.Acquire[uint64, T](nextRaw())

	hold := time.Duration(10+rand.IntN(140)) * time.Millisecond
	select {
	case <-stop:
	case <-time.After(hold):
	}

	if rand.IntN(25) == 0 {
		// Walk away without closing.
		return
	}
	o.Close()
}

func (w *workload) shutdown() {
	close(w.stop)
	w.wg.Wait()
}
