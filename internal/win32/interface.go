package win32

import "unsafe"

// Calls is the native-call surface the window enumerator, cursor
// compositor, and capture engine depend on. *Bindings is the
// production implementation; tests substitute a fake satisfying the
// same interface so enumeration, compositing, and capture logic can
// run without real user32/gdi32 calls. This package imports
// golang.org/x/sys/windows without build constraints, so it and its
// fakes build only for GOOS=windows.
type Calls interface {
	GetWindowRect(hwnd uintptr) (RECT, bool)
	GetDC(hwnd uintptr) uintptr
	GetWindowDC(hwnd uintptr) uintptr
	ReleaseDC(hwnd, hdc uintptr)
	FindWindowNext(prev uintptr) uintptr
	GetWindowText(hwnd uintptr) string
	GetClassName(hwnd uintptr) (string, bool)
	IsWindowVisible(hwnd uintptr) bool
	GetWindowProcessID(hwnd uintptr) (uint32, bool)
	GetWindowStyle(hwnd uintptr) (uint32, bool)
	GetDpiForWindow(hwnd uintptr) uint32
	GetDpiForSystem() uint32
	SetProcessDPIAware() bool
	PrintWindow(hwnd, memDC uintptr) bool
	GetCursorInfo() (CURSORINFO, bool)
	GetIconInfo(hIcon uintptr) (ICONINFO, bool)
	DrawIconEx(hdc uintptr, x, y int32, hIcon uintptr) bool
	CreateCompatibleDC(hdc uintptr) uintptr
	CreateCompatibleBitmap(hdc uintptr, width, height int32) uintptr
	SelectObject(hdc, obj uintptr) uintptr
	BitBlt(dstDC uintptr, dstX, dstY, width, height int32, srcDC uintptr, srcX, srcY int32, rop uint32) bool
	DeleteObject(obj uintptr)
	DeleteDC(hdc uintptr)
	GetDIBits(hdc, bitmap uintptr, height int32, dst unsafe.Pointer, bitmapInfo unsafe.Pointer) bool
	GetDeviceCaps(hdc uintptr, index int32) int32
	CreateDIBSection(hdc uintptr, bitmapInfo unsafe.Pointer) (bitmap uintptr, bits unsafe.Pointer, ok bool)
	Close() error
	Closed() bool
}

var _ Calls = (*Bindings)(nil)
