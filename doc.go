// Package oshandle provides generic exclusive ownership for opaque OS
// handles: file handles, process handles, synchronization objects, sockets,
// registry keys, GUI objects.
//
// Every acquired handle must be released exactly once, with the release
// routine that matches its category. Many categories share one raw
// representation (on Windows, most kernel objects are a HANDLE), so closing a
// value with the wrong routine is undefined behavior the compiler normally
// cannot see. This library makes the category part of the type.
//
// # Architecture Overview
//
// The library is organized into a small root package and focused subpackages:
//
//	oshandle/       Core: Traits, sentinel policies, Tagged, Owner
//	├── winres/     Windows category set over golang.org/x/sys/windows
//	├── track/      Opt-in lifecycle tracking with observers and zap logging
//	├── errors/     Structured error types used by the tracking layer
//	└── cmd/
//	    └── handletop/  Demo workload and interactive handle inspector
//
// # Trait Records
//
// A category's behavior bundle is a zero-size type satisfying Traits: the
// invalid sentinel, the release routine, and the validity predicate. Trait
// types are built by embedding one sentinel policy and one release mixin:
//
//	type closeHandle struct{}
//
//	func (closeHandle) Release(h windows.Handle) { windows.CloseHandle(h) }
//
//	type Process struct {
//	    oshandle.NullSentinel[windows.Handle]
//	    closeHandle
//	}
//
// Two sentinel families exist: NullSentinel (invalid = zero value) and
// MarkerSentinel (invalid = a distinguished out-of-band marker). A category
// belongs to exactly one family; embedding both is a compile error because
// the method set turns ambiguous.
//
// # Owners
//
// Owner is the release-exactly-once wrapper:
//
//	p := oshandle.New[windows.Handle, winres.Process](raw)
//	defer p.Close()
//
//	if !p.Valid() {
//	    // acquisition failed; the owner is inert
//	}
//
//	use(p.Get())        // borrow the raw value
//	p.Reset(other)      // release current, adopt other
//	raw := p.Detach()   // give up ownership without releasing
//
// Out-parameter acquisition writes straight into the owner's slot:
//
//	var key winres.RegistryKeyHandle
//	windows.RegOpenKeyEx(root, path, 0, access, key.Slot())
//
// # Thread Safety
//
// An Owner is a passive value with no internal locking. It is single-writer:
// mutate it from one goroutine at a time, and hand resources between
// goroutines by transferring ownership.
//
// # Failure Model
//
// The core raises no errors. The only failure state is "handle is invalid",
// observed through Valid. Why an acquisition failed is the acquisition call's
// diagnostic, not this library's. Release failures are swallowed, matching
// the OS contract for handle-closing primitives.
package oshandle
