package oshandle

// Traits binds a handle category to its behavioral contract: the invalid
// sentinel value, the release routine, and the validity predicate.
//
// Concrete trait types are zero-size structs used as type arguments. The
// Owner resolves its trait record through the type parameter, so the lookup
// costs nothing at runtime and a category without a trait record cannot be
// instantiated at all.
//
// The sentinel and release routine must match the OS contract for the
// category. Releasing a handle with the wrong routine is undefined behavior
// that no runtime check can catch; Traits only guarantees the pairing is
// fixed at compile time.
type Traits[H comparable] interface {
	// Sentinel returns the raw value that means "no resource held".
	Sentinel() H

	// Release frees the resource identified by raw. It is only ever invoked
	// on a value for which Valid reports true. Release failures are not
	// surfaced, matching the OS contract for handle-closing primitives.
	Release(raw H)

	// Valid reports whether raw identifies a live resource.
	Valid(raw H) bool
}

// Marker supplies the out-of-band invalid value for the MarkerSentinel
// policy. Implementations are zero-size.
type Marker[H comparable] interface {
	Marker() H
}

// NullSentinel is the sentinel policy for categories whose invalid value is
// the zero value of the representation (acquisition APIs that return
// NULL/zero on failure). Embed it in a category's trait type alongside a
// release mixin.
type NullSentinel[H comparable] struct{}

// Sentinel returns the zero value of H.
func (NullSentinel[H]) Sentinel() (zero H) { return }

// Valid reports whether raw differs from the zero value.
func (NullSentinel[H]) Valid(raw H) bool {
	var zero H
	return raw != zero
}

// MarkerSentinel is the sentinel policy for categories whose invalid value is
// a distinguished marker distinct from the zero value (acquisition APIs that
// return INVALID_HANDLE_VALUE on failure). In this family the zero value of H
// is a live handle.
//
// A category embeds exactly one sentinel policy. Embedding NullSentinel and
// MarkerSentinel together makes the Sentinel and Valid method sets ambiguous,
// so the trait type stops satisfying Traits and the program does not compile.
type MarkerSentinel[H comparable, M Marker[H]] struct{}

// Sentinel returns M's marker value.
func (MarkerSentinel[H, M]) Sentinel() H {
	var m M
	return m.Marker()
}

// Valid reports whether raw differs from the marker.
func (MarkerSentinel[H, M]) Valid(raw H) bool {
	var m M
	return raw != m.Marker()
}
