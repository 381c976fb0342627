// Package winres registers the Windows resource categories for the oshandle
// core.
//
// Most Windows kernel objects share the HANDLE representation and are
// released through CloseHandle, but their creation APIs disagree about the
// failure value: event, mutex, process and friends return NULL, while file,
// pipe and snapshot creation return INVALID_HANDLE_VALUE. Each category is
// assigned to exactly one of the two sentinel families; compile-time
// assertions in this package keep the assignment honest.
//
// Categories with their own destructors (sockets, registry keys, loaded
// modules, window and GDI objects) get dedicated release mixins. The GUI
// destructors are not exported by x/sys/windows and are resolved lazily from
// user32.dll and gdi32.dll.
//
// Typical use:
//
//	var snap winres.SnapshotHandle
//	snap.Reset(mustSnapshot())
//	defer snap.Close()
//
//	var key winres.RegistryKeyHandle
//	err := windows.RegOpenKeyEx(windows.HKEY_LOCAL_MACHINE, subkey, 0,
//	    windows.KEY_READ, key.Slot())
//	if err != nil || !key.Valid() {
//	    return err
//	}
//	defer key.Close()
//
// The whole package is build-tagged for Windows; the oshandle core itself is
// platform-neutral.
package winres
