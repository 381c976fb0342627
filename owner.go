package oshandle

// noCopy makes `go vet` flag by-value copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owner holds exactly one raw handle value for category T and guarantees the
// value is released exactly once: on Close, or when Reset replaces it. The
// trait record is the zero-size type parameter, fixed for the Owner's whole
// lifetime.
//
// Ownership is exclusive. Owner must not be copied by value (go vet reports
// such copies); transfer ownership with dst.Reset(src.Detach()) or by handing
// over the pointer. An Owner is single-writer: concurrent mutation requires
// external synchronization.
//
// The zero value is an empty owner holding the category sentinel, ready to
// use. Go has no destructors, so the scope-exit release is spelled
//
//	o := oshandle.New[windows.Handle, winres.Process](raw)
//	defer o.Close()
type Owner[H comparable, T Traits[H]] struct {
	noCopy noCopy
	raw    H
	init   bool
}

// New returns an owner responsible for releasing raw. No validity check is
// performed: constructing over the sentinel yields an inert empty owner, so
// the result of a possibly failed acquisition call can be adopted directly
// and inspected with Valid afterward.
func New[H comparable, T Traits[H]](raw H) *Owner[H, T] {
	return &Owner[H, T]{raw: raw, init: true}
}

// Empty returns an owner holding the category sentinel.
func Empty[H comparable, T Traits[H]]() *Owner[H, T] {
	var t T
	return &Owner[H, T]{raw: t.Sentinel(), init: true}
}

// The sentinel of a marker-family category is not the zero bit pattern, so a
// zero-value Owner settles its slot to the sentinel on first use.
func (o *Owner[H, T]) normalize() {
	if !o.init {
		var t T
		o.raw = t.Sentinel()
		o.init = true
	}
}

// Valid reports whether the held value identifies a live resource. Pure
// query; an invalid owner is the only failure state this type models.
func (o *Owner[H, T]) Valid() bool {
	o.normalize()
	var t T
	return t.Valid(o.raw)
}

// Close releases the held value if it is valid, then resets the slot to the
// sentinel. Closing an already-invalid owner is a no-op, so Close is
// idempotent and the release routine can never run twice for one value.
func (o *Owner[H, T]) Close() {
	o.normalize()
	var t T
	if t.Valid(o.raw) {
		t.Release(o.raw)
		o.raw = t.Sentinel()
	}
}

// Reset releases the currently held value, if any, then adopts raw. The old
// value is released before the new one becomes observable.
func (o *Owner[H, T]) Reset(raw H) {
	o.Close()
	o.raw = raw
}

// Get returns the held raw value without affecting ownership, for passing
// into OS calls that consume the raw representation.
func (o *Owner[H, T]) Get() H {
	o.normalize()
	return o.raw
}

// Slot exposes the owner's internal storage, for acquisition APIs that write
// a newly created handle through an out parameter:
//
//	err := windows.RegOpenKeyEx(root, path, 0, access, key.Slot())
//
// The owner adopts whatever the call writes. Callers must not overwrite a
// valid handle this way — Close first, or use Reset.
func (o *Owner[H, T]) Slot() *H {
	o.normalize()
	return &o.raw
}

// Detach returns the held value and resets the owner to the sentinel without
// releasing anything. The caller assumes responsibility for the returned
// value; the owner is left empty and reusable.
func (o *Owner[H, T]) Detach() H {
	o.normalize()
	var t T
	raw := o.raw
	o.raw = t.Sentinel()
	return raw
}
