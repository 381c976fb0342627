package track

import (
	"testing"

	oshandle "github.com/wippyai/os-handle"
)

var sockReleased []uint64

// sockCat is a fake null-sentinel category over uint64.
type sockCat struct {
	oshandle.NullSentinel[uint64]
}

func (sockCat) Release(h uint64) { sockReleased = append(sockReleased, h) }

func TestTracedOwnerLifecycle(t *testing.T) {
	sockReleased = nil
	tr := New()
	SetDefault(tr)

	o := Acquire[uint64, sockCat](5)
	if !o.Valid() {
		t.Fatal("Owner should be valid")
	}
	if tr.Live() != 1 {
		t.Fatalf("Expected 1 live after Acquire, got %d", tr.Live())
	}

	o.Close()
	if len(sockReleased) != 1 || sockReleased[0] != 5 {
		t.Fatalf("Expected underlying release of 5, got %v", sockReleased)
	}
	if tr.Live() != 0 {
		t.Fatalf("Expected 0 live after Close, got %d", tr.Live())
	}

	stats := tr.Stats()
	if len(stats) != 1 || stats[0].Category != "sockCat" {
		t.Fatalf("Expected sockCat category, got %v", stats)
	}
}

func TestAcquireInvalidRecordsNothing(t *testing.T) {
	sockReleased = nil
	tr := New()
	SetDefault(tr)

	o := Acquire[uint64, sockCat](0)
	if o.Valid() {
		t.Fatal("Owner over the sentinel should be invalid")
	}
	if tr.Live() != 0 {
		t.Fatal("Failed acquisition must not be counted")
	}

	o.Close()
	if len(sockReleased) != 0 {
		t.Fatal("Nothing to release")
	}
}

func TestTracedReset(t *testing.T) {
	sockReleased = nil
	tr := New()
	SetDefault(tr)

	o := Acquire[uint64, sockCat](1)
	Reset(o, 2)

	// The old value's release went through the traced trait record; the new
	// value was recorded as an acquisition.
	if len(sockReleased) != 1 || sockReleased[0] != 1 {
		t.Fatalf("Expected release of old value, got %v", sockReleased)
	}
	if tr.Live() != 1 {
		t.Fatalf("Expected 1 live after Reset, got %d", tr.Live())
	}

	stats := tr.Stats()
	if stats[0].Released != 1 || stats[0].Total != 2 {
		t.Fatalf("Expected 1 release and 2 acquisitions, got %+v", stats[0])
	}

	o.Close()
	if tr.Live() != 0 {
		t.Fatalf("Expected 0 live after Close, got %d", tr.Live())
	}
}

func TestTracedDetach(t *testing.T) {
	sockReleased = nil
	tr := New()
	SetDefault(tr)

	o := Acquire[uint64, sockCat](7)
	raw := Detach(o)

	if raw != 7 {
		t.Fatalf("Expected detached value 7, got %d", raw)
	}
	if len(sockReleased) != 0 {
		t.Fatal("Detach must not release")
	}
	if tr.Live() != 0 {
		t.Fatalf("Expected 0 live after detach, got %d", tr.Live())
	}

	// Detached raw value is on the caller now.
	sockCat{}.Release(raw)
}

func TestCategoryName(t *testing.T) {
	if got := CategoryName[sockCat](); got != "sockCat" {
		t.Fatalf("Expected sockCat, got %q", got)
	}
}
