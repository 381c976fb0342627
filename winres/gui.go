//go:build windows

package winres

import (
	"golang.org/x/sys/windows"

	oshandle "github.com/wippyai/os-handle"
)

// x/sys/windows does not export the user32/gdi32 destructors, so they are
// resolved lazily from the system DLLs.
var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")
	modgdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procDestroyWindow = moduser32.NewProc("DestroyWindow")
	procDestroyMenu   = moduser32.NewProc("DestroyMenu")
	procDestroyIcon   = moduser32.NewProc("DestroyIcon")
	procDeleteDC      = modgdi32.NewProc("DeleteDC")
	procDeleteObject  = modgdi32.NewProc("DeleteObject")
)

type destroyWindow struct{}

func (destroyWindow) Release(h windows.Handle) { _, _, _ = procDestroyWindow.Call(uintptr(h)) }

type destroyMenu struct{}

func (destroyMenu) Release(h windows.Handle) { _, _, _ = procDestroyMenu.Call(uintptr(h)) }

type destroyIcon struct{}

func (destroyIcon) Release(h windows.Handle) { _, _, _ = procDestroyIcon.Call(uintptr(h)) }

type deleteDC struct{}

func (deleteDC) Release(h windows.Handle) { _, _, _ = procDeleteDC.Call(uintptr(h)) }

// deleteObject covers all GDI objects: bitmaps, pens, brushes, palettes.
type deleteObject struct{}

func (deleteObject) Release(h windows.Handle) { _, _, _ = procDeleteObject.Call(uintptr(h)) }

// GUI and GDI categories. All creation APIs in this family return NULL on
// failure.
type (
	Window struct {
		oshandle.NullSentinel[windows.Handle]
		destroyWindow
	}
	Menu struct {
		oshandle.NullSentinel[windows.Handle]
		destroyMenu
	}
	Icon struct {
		oshandle.NullSentinel[windows.Handle]
		destroyIcon
	}
	DeviceContext struct {
		oshandle.NullSentinel[windows.Handle]
		deleteDC
	}
	Bitmap struct {
		oshandle.NullSentinel[windows.Handle]
		deleteObject
	}
	Pen struct {
		oshandle.NullSentinel[windows.Handle]
		deleteObject
	}
	Brush struct {
		oshandle.NullSentinel[windows.Handle]
		deleteObject
	}
	Palette struct {
		oshandle.NullSentinel[windows.Handle]
		deleteObject
	}
)

var (
	_ oshandle.Traits[windows.Handle] = Window{}
	_ oshandle.Traits[windows.Handle] = Menu{}
	_ oshandle.Traits[windows.Handle] = Icon{}
	_ oshandle.Traits[windows.Handle] = DeviceContext{}
	_ oshandle.Traits[windows.Handle] = Bitmap{}
	_ oshandle.Traits[windows.Handle] = Pen{}
	_ oshandle.Traits[windows.Handle] = Brush{}
	_ oshandle.Traits[windows.Handle] = Palette{}
)

type (
	WindowHandle        = oshandle.Owner[windows.Handle, Window]
	MenuHandle          = oshandle.Owner[windows.Handle, Menu]
	IconHandle          = oshandle.Owner[windows.Handle, Icon]
	DeviceContextHandle = oshandle.Owner[windows.Handle, DeviceContext]
	BitmapHandle        = oshandle.Owner[windows.Handle, Bitmap]
	PenHandle           = oshandle.Owner[windows.Handle, Pen]
	BrushHandle         = oshandle.Owner[windows.Handle, Brush]
	PaletteHandle       = oshandle.Owner[windows.Handle, Palette]
)
