// Package win32fake provides a fake implementing win32.Calls so the
// window enumerator, cursor compositor, and capture engine's logic
// can be exercised in tests without a real user32/gdi32. It imports
// internal/win32, so it builds only for GOOS=windows.
// Each field defaults to a zero-value stand-in; set the ones a given
// test cares about.
package win32fake

import (
	"unsafe"

	"github.com/nktkas/windows-screenshot/internal/win32"
)

// Fake is a configurable stand-in for *win32.Bindings. Unset function
// fields fail safe: they report the native-call failure the real
// entry point would on an unexpected handle.
type Fake struct {
	GetWindowRectFunc        func(hwnd uintptr) (win32.RECT, bool)
	GetDCFunc                func(hwnd uintptr) uintptr
	GetWindowDCFunc          func(hwnd uintptr) uintptr
	ReleaseDCFunc            func(hwnd, hdc uintptr)
	FindWindowNextFunc       func(prev uintptr) uintptr
	GetWindowTextFunc        func(hwnd uintptr) string
	GetClassNameFunc         func(hwnd uintptr) (string, bool)
	IsWindowVisibleFunc      func(hwnd uintptr) bool
	GetWindowProcessIDFunc   func(hwnd uintptr) (uint32, bool)
	GetWindowStyleFunc       func(hwnd uintptr) (uint32, bool)
	GetDpiForWindowFunc      func(hwnd uintptr) uint32
	GetDpiForSystemFunc      func() uint32
	SetProcessDPIAwareFunc   func() bool
	PrintWindowFunc          func(hwnd, memDC uintptr) bool
	GetCursorInfoFunc        func() (win32.CURSORINFO, bool)
	GetIconInfoFunc          func(hIcon uintptr) (win32.ICONINFO, bool)
	DrawIconExFunc           func(hdc uintptr, x, y int32, hIcon uintptr) bool
	CreateCompatibleDCFunc   func(hdc uintptr) uintptr
	CreateCompatibleBitmapFunc func(hdc uintptr, width, height int32) uintptr
	SelectObjectFunc         func(hdc, obj uintptr) uintptr
	BitBltFunc               func(dstDC uintptr, dstX, dstY, width, height int32, srcDC uintptr, srcX, srcY int32, rop uint32) bool
	DeleteObjectFunc         func(obj uintptr)
	DeleteDCFunc             func(hdc uintptr)
	GetDIBitsFunc            func(hdc, bitmap uintptr, height int32, dst unsafe.Pointer, bitmapInfo unsafe.Pointer) bool
	GetDeviceCapsFunc        func(hdc uintptr, index int32) int32
	CreateDIBSectionFunc     func(hdc uintptr, bitmapInfo unsafe.Pointer) (uintptr, unsafe.Pointer, bool)
	CloseFunc                func() error
	ClosedFunc               func() bool

	// Released records every handle passed to ReleaseDC/DeleteObject/
	// DeleteDC, in call order, for resource-conservation assertions.
	Released []uintptr
}

func (f *Fake) GetWindowRect(hwnd uintptr) (win32.RECT, bool) {
	if f.GetWindowRectFunc != nil {
		return f.GetWindowRectFunc(hwnd)
	}
	return win32.RECT{}, false
}

func (f *Fake) GetDC(hwnd uintptr) uintptr {
	if f.GetDCFunc != nil {
		return f.GetDCFunc(hwnd)
	}
	return 0
}

func (f *Fake) GetWindowDC(hwnd uintptr) uintptr {
	if f.GetWindowDCFunc != nil {
		return f.GetWindowDCFunc(hwnd)
	}
	return 0
}

func (f *Fake) ReleaseDC(hwnd, hdc uintptr) {
	f.Released = append(f.Released, hdc)
	if f.ReleaseDCFunc != nil {
		f.ReleaseDCFunc(hwnd, hdc)
	}
}

func (f *Fake) FindWindowNext(prev uintptr) uintptr {
	if f.FindWindowNextFunc != nil {
		return f.FindWindowNextFunc(prev)
	}
	return 0
}

func (f *Fake) GetWindowText(hwnd uintptr) string {
	if f.GetWindowTextFunc != nil {
		return f.GetWindowTextFunc(hwnd)
	}
	return ""
}

func (f *Fake) GetClassName(hwnd uintptr) (string, bool) {
	if f.GetClassNameFunc != nil {
		return f.GetClassNameFunc(hwnd)
	}
	return "", false
}

func (f *Fake) IsWindowVisible(hwnd uintptr) bool {
	if f.IsWindowVisibleFunc != nil {
		return f.IsWindowVisibleFunc(hwnd)
	}
	return false
}

func (f *Fake) GetWindowProcessID(hwnd uintptr) (uint32, bool) {
	if f.GetWindowProcessIDFunc != nil {
		return f.GetWindowProcessIDFunc(hwnd)
	}
	return 0, false
}

func (f *Fake) GetWindowStyle(hwnd uintptr) (uint32, bool) {
	if f.GetWindowStyleFunc != nil {
		return f.GetWindowStyleFunc(hwnd)
	}
	return 0, false
}

func (f *Fake) GetDpiForWindow(hwnd uintptr) uint32 {
	if f.GetDpiForWindowFunc != nil {
		return f.GetDpiForWindowFunc(hwnd)
	}
	return 0
}

func (f *Fake) GetDpiForSystem() uint32 {
	if f.GetDpiForSystemFunc != nil {
		return f.GetDpiForSystemFunc()
	}
	return 96
}

func (f *Fake) SetProcessDPIAware() bool {
	if f.SetProcessDPIAwareFunc != nil {
		return f.SetProcessDPIAwareFunc()
	}
	return true
}

func (f *Fake) PrintWindow(hwnd, memDC uintptr) bool {
	if f.PrintWindowFunc != nil {
		return f.PrintWindowFunc(hwnd, memDC)
	}
	return false
}

func (f *Fake) GetCursorInfo() (win32.CURSORINFO, bool) {
	if f.GetCursorInfoFunc != nil {
		return f.GetCursorInfoFunc()
	}
	return win32.CURSORINFO{}, false
}

func (f *Fake) GetIconInfo(hIcon uintptr) (win32.ICONINFO, bool) {
	if f.GetIconInfoFunc != nil {
		return f.GetIconInfoFunc(hIcon)
	}
	return win32.ICONINFO{}, false
}

func (f *Fake) DrawIconEx(hdc uintptr, x, y int32, hIcon uintptr) bool {
	if f.DrawIconExFunc != nil {
		return f.DrawIconExFunc(hdc, x, y, hIcon)
	}
	return false
}

func (f *Fake) CreateCompatibleDC(hdc uintptr) uintptr {
	if f.CreateCompatibleDCFunc != nil {
		return f.CreateCompatibleDCFunc(hdc)
	}
	return 0
}

func (f *Fake) CreateCompatibleBitmap(hdc uintptr, width, height int32) uintptr {
	if f.CreateCompatibleBitmapFunc != nil {
		return f.CreateCompatibleBitmapFunc(hdc, width, height)
	}
	return 0
}

func (f *Fake) SelectObject(hdc, obj uintptr) uintptr {
	if f.SelectObjectFunc != nil {
		return f.SelectObjectFunc(hdc, obj)
	}
	return 0
}

func (f *Fake) BitBlt(dstDC uintptr, dstX, dstY, width, height int32, srcDC uintptr, srcX, srcY int32, rop uint32) bool {
	if f.BitBltFunc != nil {
		return f.BitBltFunc(dstDC, dstX, dstY, width, height, srcDC, srcX, srcY, rop)
	}
	return false
}

func (f *Fake) DeleteObject(obj uintptr) {
	f.Released = append(f.Released, obj)
	if f.DeleteObjectFunc != nil {
		f.DeleteObjectFunc(obj)
	}
}

func (f *Fake) DeleteDC(hdc uintptr) {
	f.Released = append(f.Released, hdc)
	if f.DeleteDCFunc != nil {
		f.DeleteDCFunc(hdc)
	}
}

func (f *Fake) GetDIBits(hdc, bitmap uintptr, height int32, dst unsafe.Pointer, bitmapInfo unsafe.Pointer) bool {
	if f.GetDIBitsFunc != nil {
		return f.GetDIBitsFunc(hdc, bitmap, height, dst, bitmapInfo)
	}
	return false
}

func (f *Fake) GetDeviceCaps(hdc uintptr, index int32) int32 {
	if f.GetDeviceCapsFunc != nil {
		return f.GetDeviceCapsFunc(hdc, index)
	}
	return 0
}

func (f *Fake) CreateDIBSection(hdc uintptr, bitmapInfo unsafe.Pointer) (uintptr, unsafe.Pointer, bool) {
	if f.CreateDIBSectionFunc != nil {
		return f.CreateDIBSectionFunc(hdc, bitmapInfo)
	}
	return 0, nil, false
}

func (f *Fake) Close() error {
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}

func (f *Fake) Closed() bool {
	if f.ClosedFunc != nil {
		return f.ClosedFunc()
	}
	return false
}

var _ win32.Calls = (*Fake)(nil)
