package oshandle

import (
	"testing"
)

// Fake categories over a shared uint64 representation. Release calls are
// recorded in package-level slices so the zero-size trait types stay
// zero-size.
var (
	procReleased []uint64
	fileReleased []uint64
)

func resetReleases() {
	procReleased = nil
	fileReleased = nil
}

// procCat models the null-sentinel family (invalid = 0).
type procCat struct {
	NullSentinel[uint64]
}

func (procCat) Release(h uint64) { procReleased = append(procReleased, h) }

// badFile is the out-of-band marker for the fake file category.
const badFile = ^uint64(0)

type fileMarker struct{}

func (fileMarker) Marker() uint64 { return badFile }

// fileCat models the marker-sentinel family (invalid = badFile, 0 is live).
type fileCat struct {
	MarkerSentinel[uint64, fileMarker]
}

func (fileCat) Release(h uint64) { fileReleased = append(fileReleased, h) }

var (
	_ Traits[uint64] = procCat{}
	_ Traits[uint64] = fileCat{}
)

func TestEmptyOwner(t *testing.T) {
	resetReleases()

	p := Empty[uint64, procCat]()
	if p.Valid() {
		t.Fatal("Empty owner should be invalid")
	}
	if p.Get() != 0 {
		t.Fatalf("Expected null sentinel, got %d", p.Get())
	}

	f := Empty[uint64, fileCat]()
	if f.Valid() {
		t.Fatal("Empty owner should be invalid")
	}
	if f.Get() != badFile {
		t.Fatalf("Expected marker sentinel, got %d", f.Get())
	}
}

func TestZeroValueOwner(t *testing.T) {
	resetReleases()

	// The zero value must behave like Empty even when the sentinel is not
	// the zero bit pattern.
	var f Owner[uint64, fileCat]
	if f.Valid() {
		t.Fatal("Zero-value owner should be invalid")
	}
	if f.Get() != badFile {
		t.Fatalf("Expected marker sentinel, got %d", f.Get())
	}

	f.Close()
	if len(fileReleased) != 0 {
		t.Fatal("Closing an empty owner must not release")
	}
}

func TestNewValid(t *testing.T) {
	resetReleases()

	p := New[uint64, procCat](42)
	if !p.Valid() {
		t.Fatal("Owner over a live value should be valid")
	}
	if p.Get() != 42 {
		t.Fatalf("Expected 42, got %d", p.Get())
	}
	p.Close()

	// Zero is a live value in the marker family.
	f := New[uint64, fileCat](0)
	if !f.Valid() {
		t.Fatal("Zero should be live for a marker-family category")
	}
	f.Close()
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	resetReleases()

	p := New[uint64, procCat](42)
	p.Close()

	if len(procReleased) != 1 || procReleased[0] != 42 {
		t.Fatalf("Expected one release of 42, got %v", procReleased)
	}
	if p.Valid() {
		t.Fatal("Owner should be invalid after Close")
	}
	if p.Get() != 0 {
		t.Fatalf("Expected sentinel after Close, got %d", p.Get())
	}

	// Close is idempotent.
	p.Close()
	if len(procReleased) != 1 {
		t.Fatalf("Second Close must not release again, got %v", procReleased)
	}
}

func TestResetReleasesOldFirst(t *testing.T) {
	resetReleases()

	p := New[uint64, procCat](1)
	p.Reset(2)

	if len(procReleased) != 1 || procReleased[0] != 1 {
		t.Fatalf("Expected the old value released once, got %v", procReleased)
	}
	if p.Get() != 2 {
		t.Fatalf("Expected new value 2, got %d", p.Get())
	}

	p.Close()
	if len(procReleased) != 2 || procReleased[1] != 2 {
		t.Fatalf("Expected both values released, got %v", procReleased)
	}
}

func TestResetOnEmptyOwner(t *testing.T) {
	resetReleases()

	p := Empty[uint64, procCat]()
	p.Reset(9)

	if len(procReleased) != 0 {
		t.Fatal("Reset on an empty owner must not release")
	}
	if !p.Valid() || p.Get() != 9 {
		t.Fatalf("Expected owner to hold 9, got %d", p.Get())
	}
	p.Close()
}

func TestDetach(t *testing.T) {
	resetReleases()

	p := New[uint64, procCat](7)
	raw := p.Detach()

	if raw != 7 {
		t.Fatalf("Expected detached value 7, got %d", raw)
	}
	if p.Valid() {
		t.Fatal("Owner should be empty after Detach")
	}
	if len(procReleased) != 0 {
		t.Fatal("Detach must not release")
	}

	// Transfer of ownership: the receiving owner releases, the source never
	// does.
	q := New[uint64, procCat](raw)
	p.Close()
	q.Close()
	if len(procReleased) != 1 || procReleased[0] != 7 {
		t.Fatalf("Expected exactly one release of 7, got %v", procReleased)
	}
}

// Assigning the marker itself leaves a marker-family owner invalid.
func TestMarkerIsNeverLive(t *testing.T) {
	resetReleases()

	f := Empty[uint64, fileCat]()
	if f.Valid() {
		t.Fatal("Empty owner should be invalid")
	}

	f.Reset(badFile)
	if f.Valid() {
		t.Fatal("The marker value must never be live")
	}

	f.Close()
	if len(fileReleased) != 0 {
		t.Fatalf("Expected zero releases, got %v", fileReleased)
	}
}

// Out-parameter acquisition: the external call writes straight into the
// owner's storage.
func TestSlotOutParameter(t *testing.T) {
	resetReleases()

	fakeOpen := func(out *uint64) {
		*out = 99
	}

	f := Empty[uint64, fileCat]()
	fakeOpen(f.Slot())

	if !f.Valid() {
		t.Fatal("Owner should be valid after out-parameter write")
	}
	if f.Get() != 99 {
		t.Fatalf("Expected 99, got %d", f.Get())
	}

	f.Close()
	if len(fileReleased) != 1 || fileReleased[0] != 99 {
		t.Fatalf("Expected one release of 99, got %v", fileReleased)
	}
}

// Replace-twice-then-destroy: one release after the second assignment, two
// after the owner goes out of scope.
func TestReplaceThenScopeExit(t *testing.T) {
	resetReleases()

	func() {
		p := Empty[uint64, procCat]()
		defer p.Close()

		p.Reset(10)
		p.Reset(20)
		if len(procReleased) != 1 || procReleased[0] != 10 {
			t.Fatalf("Expected one release after second assignment, got %v", procReleased)
		}
	}()

	if len(procReleased) != 2 || procReleased[1] != 20 {
		t.Fatalf("Expected two releases after scope exit, got %v", procReleased)
	}
}
