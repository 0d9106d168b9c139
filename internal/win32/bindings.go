// Package win32 declares the Win32 entry points the capture engine,
// window enumerator, and cursor compositor need, and owns the
// user32.dll/gdi32.dll lifetime: loaded once at construction, released
// exactly once by Close.
package win32

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// Win32 constants used across the capture pipeline.
const (
	DCXWindow    = 0x01 | 0x02 // window DC cache-bypass flags, passed to GetDCEx
	DCXScreen    = 0x02        // screen DC cache-bypass flag, passed to GetDCEx
	SRCCOPY      = 0x00CC0020
	CaptureBlt   = 0x40000000
	PWFull       = 2 // PW_RENDERFULLCONTENT: client + non-client via WM_PRINT
	DIBRGBColors = 0
	BIRGB        = 0

	DesktopHorzRes = 118
	DesktopVertRes = 117

	DrawIconNormal = 0x0003

	GWLStyle = -16
)

// RECT mirrors the Win32 RECT layout: four little-endian int32 edges.
type RECT struct {
	Left, Top, Right, Bottom int32
}

// Bindings owns the loaded user32/gdi32 modules and every proc the
// capture pipeline calls through. Construct with NewBindings; release
// with Close. Safe for concurrent use by multiple Engine instances.
type Bindings struct {
	user32 *windows.LazyDLL
	gdi32  *windows.LazyDLL

	// user32
	getWindowRectProc            *windows.LazyProc
	getDCExProc                  *windows.LazyProc
	releaseDCProc                *windows.LazyProc
	findWindowExProc             *windows.LazyProc
	getWindowTextWProc           *windows.LazyProc
	getClassNameWProc            *windows.LazyProc
	isWindowVisibleProc          *windows.LazyProc
	getWindowThreadProcessIDProc *windows.LazyProc
	getWindowLongPtrWProc        *windows.LazyProc
	getDpiForWindowProc          *windows.LazyProc
	printWindowProc              *windows.LazyProc
	getCursorInfoProc            *windows.LazyProc
	getIconInfoProc              *windows.LazyProc
	drawIconExProc               *windows.LazyProc
	getDpiForSystemProc          *windows.LazyProc
	setProcessDPIAwareProc       *windows.LazyProc

	// gdi32
	createCompatibleDCProc     *windows.LazyProc
	createCompatibleBitmapProc *windows.LazyProc
	selectObjectProc           *windows.LazyProc
	bitBltProc                 *windows.LazyProc
	deleteObjectProc           *windows.LazyProc
	deleteDCProc               *windows.LazyProc
	getDIBitsProc              *windows.LazyProc
	getDeviceCapsProc          *windows.LazyProc
	createDIBSectionProc       *windows.LazyProc

	closeOnce sync.Once
	closed    bool
	mu        sync.Mutex
}

// NewBindings loads user32.dll and gdi32.dll and resolves every proc
// the capture pipeline uses. It fails with ErrLibLoadFailed-flavored
// error if either module cannot be loaded.
func NewBindings() (*Bindings, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	gdi32 := windows.NewLazySystemDLL("gdi32.dll")

	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("load user32.dll: %w", err)
	}
	if err := gdi32.Load(); err != nil {
		return nil, fmt.Errorf("load gdi32.dll: %w", err)
	}

	b := &Bindings{
		user32: user32,
		gdi32:  gdi32,

		getWindowRectProc:            user32.NewProc("GetWindowRect"),
		getDCExProc:                  user32.NewProc("GetDCEx"),
		releaseDCProc:                user32.NewProc("ReleaseDC"),
		findWindowExProc:             user32.NewProc("FindWindowExW"),
		getWindowTextWProc:           user32.NewProc("GetWindowTextW"),
		getClassNameWProc:            user32.NewProc("GetClassNameW"),
		isWindowVisibleProc:          user32.NewProc("IsWindowVisible"),
		getWindowThreadProcessIDProc: user32.NewProc("GetWindowThreadProcessId"),
		getWindowLongPtrWProc:        user32.NewProc("GetWindowLongPtrW"),
		getDpiForWindowProc:          user32.NewProc("GetDpiForWindow"),
		printWindowProc:              user32.NewProc("PrintWindow"),
		getCursorInfoProc:            user32.NewProc("GetCursorInfo"),
		getIconInfoProc:              user32.NewProc("GetIconInfo"),
		drawIconExProc:               user32.NewProc("DrawIconEx"),
		getDpiForSystemProc:          user32.NewProc("GetDpiForSystem"),
		setProcessDPIAwareProc:       user32.NewProc("SetProcessDPIAware"),

		createCompatibleDCProc:     gdi32.NewProc("CreateCompatibleDC"),
		createCompatibleBitmapProc: gdi32.NewProc("CreateCompatibleBitmap"),
		selectObjectProc:           gdi32.NewProc("SelectObject"),
		bitBltProc:                 gdi32.NewProc("BitBlt"),
		deleteObjectProc:           gdi32.NewProc("DeleteObject"),
		deleteDCProc:               gdi32.NewProc("DeleteDC"),
		getDIBitsProc:              gdi32.NewProc("GetDIBits"),
		getDeviceCapsProc:          gdi32.NewProc("GetDeviceCaps"),
		createDIBSectionProc:       gdi32.NewProc("CreateDIBSection"),
	}

	return b, nil
}

// Close releases the loaded modules. Idempotent: a second call is a
// no-op.
func (b *Bindings) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if ferr := windows.FreeLibrary(windows.Handle(b.gdi32.Handle())); ferr != nil {
			err = fmt.Errorf("free gdi32.dll: %w", ferr)
		}
		if ferr := windows.FreeLibrary(windows.Handle(b.user32.Handle())); ferr != nil && err == nil {
			err = fmt.Errorf("free user32.dll: %w", ferr)
		}
		b.closed = true
	})
	return err
}

// Closed reports whether Close has been called.
func (b *Bindings) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
