package track

import (
	"fmt"
	"strings"
	"sync"

	oshandle "github.com/wippyai/os-handle"
)

var (
	defaultTracker *Tracker
	defaultOnce    sync.Once
)

// Default returns the package's shared tracker.
func Default() *Tracker {
	defaultOnce.Do(func() {
		if defaultTracker == nil {
			defaultTracker = New()
		}
	})
	return defaultTracker
}

// SetDefault replaces the package's shared tracker.
// This must be called before any traced owners are created.
func SetDefault(t *Tracker) {
	defaultTracker = t
}

// Traced decorates category T's trait record so releases are reported to the
// default tracker. It satisfies oshandle.Traits and stays zero-size, so a
// traced owner has the same footprint as an untraced one.
type Traced[H comparable, T oshandle.Traits[H]] struct{}

// Sentinel returns T's sentinel.
func (Traced[H, T]) Sentinel() H {
	var t T
	return t.Sentinel()
}

// Valid reports validity per T's trait record.
func (Traced[H, T]) Valid(raw H) bool {
	var t T
	return t.Valid(raw)
}

// Release releases raw through T and records it with the default tracker.
func (Traced[H, T]) Release(raw H) {
	var t T
	t.Release(raw)
	Default().Released(CategoryName[T](), raw)
}

// Acquire wraps raw in an owner over the traced category and, if raw is
// valid, records the acquisition with the default tracker. Adopting a failed
// acquisition's sentinel records nothing: there is no resource to account for.
func Acquire[H comparable, T oshandle.Traits[H]](raw H) *oshandle.Owner[H, Traced[H, T]] {
	o := oshandle.New[H, Traced[H, T]](raw)
	if o.Valid() {
		Default().Acquired(CategoryName[T](), raw)
	}
	return o
}

// Reset replaces the value held by a traced owner. The release of the old
// value is recorded through the trait record; the adoption of the new value
// is recorded here, since the owner cannot see it as an acquisition.
func Reset[H comparable, T oshandle.Traits[H]](o *oshandle.Owner[H, Traced[H, T]], raw H) {
	o.Reset(raw)
	if o.Valid() {
		Default().Acquired(CategoryName[T](), raw)
	}
}

// Detach takes the raw value out of a traced owner without releasing it and
// records the handoff with the default tracker.
func Detach[H comparable, T oshandle.Traits[H]](o *oshandle.Owner[H, Traced[H, T]]) H {
	valid := o.Valid()
	raw := o.Detach()
	if valid {
		Default().Detached(CategoryName[T](), raw)
	}
	return raw
}

// CategoryName derives the tracking key for a trait type: its type name
// without the package qualifier.
func CategoryName[T any]() string {
	var t T
	name := fmt.Sprintf("%T", t)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
