//go:build windows

package winres

import (
	"golang.org/x/sys/windows"

	oshandle "github.com/wippyai/os-handle"
)

// closeHandle releases kernel object handles through CloseHandle.
type closeHandle struct{}

func (closeHandle) Release(h windows.Handle) { _ = windows.CloseHandle(h) }

// invalidHandleValue supplies INVALID_HANDLE_VALUE as the marker sentinel.
type invalidHandleValue struct{}

func (invalidHandleValue) Marker() windows.Handle { return windows.InvalidHandle }

// nullKernel is the trait bundle for kernel objects whose creation APIs
// return NULL on failure.
type nullKernel struct {
	oshandle.NullSentinel[windows.Handle]
	closeHandle
}

// markerKernel is the trait bundle for kernel objects whose creation APIs
// return INVALID_HANDLE_VALUE on failure. NULL is a live value here.
type markerKernel struct {
	oshandle.MarkerSentinel[windows.Handle, invalidHandleValue]
	closeHandle
}

// Null-sentinel kernel object categories.
type (
	Event            struct{ nullKernel }
	Mutex            struct{ nullKernel }
	Semaphore        struct{ nullKernel }
	Process          struct{ nullKernel }
	Thread           struct{ nullKernel }
	Job              struct{ nullKernel }
	IoCompletionPort struct{ nullKernel }
	WaitableTimer    struct{ nullKernel }
)

// Marker-sentinel kernel object categories.
type (
	File        struct{ markerKernel }
	NamedPipe   struct{ markerKernel }
	MailSlot    struct{ markerKernel }
	FileMapping struct{ markerKernel }
	Snapshot    struct{ markerKernel }
)

// Socket is released through closesocket, never CloseHandle.
type Socket struct {
	oshandle.NullSentinel[windows.Handle]
}

func (Socket) Release(h windows.Handle) { _ = windows.Closesocket(h) }

// RegistryKey is released through RegCloseKey.
type RegistryKey struct {
	oshandle.NullSentinel[windows.Handle]
}

func (RegistryKey) Release(h windows.Handle) { _ = windows.RegCloseKey(h) }

// Module is a loaded library handle, released through FreeLibrary.
type Module struct {
	oshandle.NullSentinel[windows.Handle]
}

func (Module) Release(h windows.Handle) { _ = windows.FreeLibrary(h) }

// Every category carries a trait record, pinned here so a category that
// loses its sentinel policy or release mixin fails to compile.
var (
	_ oshandle.Traits[windows.Handle] = Event{}
	_ oshandle.Traits[windows.Handle] = Mutex{}
	_ oshandle.Traits[windows.Handle] = Semaphore{}
	_ oshandle.Traits[windows.Handle] = Process{}
	_ oshandle.Traits[windows.Handle] = Thread{}
	_ oshandle.Traits[windows.Handle] = Job{}
	_ oshandle.Traits[windows.Handle] = IoCompletionPort{}
	_ oshandle.Traits[windows.Handle] = WaitableTimer{}

	_ oshandle.Traits[windows.Handle] = File{}
	_ oshandle.Traits[windows.Handle] = NamedPipe{}
	_ oshandle.Traits[windows.Handle] = MailSlot{}
	_ oshandle.Traits[windows.Handle] = FileMapping{}
	_ oshandle.Traits[windows.Handle] = Snapshot{}

	_ oshandle.Traits[windows.Handle] = Socket{}
	_ oshandle.Traits[windows.Handle] = RegistryKey{}
	_ oshandle.Traits[windows.Handle] = Module{}
)

// Owner aliases for each category.
type (
	EventHandle            = oshandle.Owner[windows.Handle, Event]
	MutexHandle            = oshandle.Owner[windows.Handle, Mutex]
	SemaphoreHandle        = oshandle.Owner[windows.Handle, Semaphore]
	ProcessHandle          = oshandle.Owner[windows.Handle, Process]
	ThreadHandle           = oshandle.Owner[windows.Handle, Thread]
	JobHandle              = oshandle.Owner[windows.Handle, Job]
	IoCompletionPortHandle = oshandle.Owner[windows.Handle, IoCompletionPort]
	WaitableTimerHandle    = oshandle.Owner[windows.Handle, WaitableTimer]

	FileHandle        = oshandle.Owner[windows.Handle, File]
	NamedPipeHandle   = oshandle.Owner[windows.Handle, NamedPipe]
	MailSlotHandle    = oshandle.Owner[windows.Handle, MailSlot]
	FileMappingHandle = oshandle.Owner[windows.Handle, FileMapping]
	SnapshotHandle    = oshandle.Owner[windows.Handle, Snapshot]

	SocketHandle      = oshandle.Owner[windows.Handle, Socket]
	RegistryKeyHandle = oshandle.Owner[windows.Handle, RegistryKey]
	ModuleHandle      = oshandle.Owner[windows.Handle, Module]
)
