package win32

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetWindowRect reads the raw, un-scaled OS rectangle for a window.
func (b *Bindings) GetWindowRect(hwnd uintptr) (RECT, bool) {
	var r RECT
	ret, _, _ := b.getWindowRectProc.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	return r, ret != 0
}

// GetDC acquires the screen device context via GetDCEx, passing the
// DCXScreen cache-bypass flag so a cached DC can never return stale
// pixel content.
func (b *Bindings) GetDC(hwnd uintptr) uintptr {
	dc, _, _ := b.getDCExProc.Call(hwnd, 0, uintptr(DCXScreen))
	return dc
}

// GetWindowDC acquires the window (including non-client area) DC via
// GetDCEx, passing the DCXWindow cache-bypass flags so a window with a
// cached or CS_OWNDC-class DC can never return stale pixel content.
func (b *Bindings) GetWindowDC(hwnd uintptr) uintptr {
	dc, _, _ := b.getDCExProc.Call(hwnd, 0, uintptr(DCXWindow))
	return dc
}

// ReleaseDC releases a DC obtained from GetDC/GetWindowDC.
func (b *Bindings) ReleaseDC(hwnd, hdc uintptr) {
	b.releaseDCProc.Call(hwnd, hdc)
}

// FindWindowNext advances the top-level sibling walk: pass prev==0 on
// the first call, the previously returned handle thereafter. Returns
// 0 when enumeration is exhausted.
func (b *Bindings) FindWindowNext(prev uintptr) uintptr {
	next, _, _ := b.findWindowExProc.Call(0, prev, 0, 0)
	return next
}

// GetWindowText reads a window's title, truncated at 256 UTF-16 units.
// An empty title is not an error.
func (b *Bindings) GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)
	ret, _, _ := b.getWindowTextWProc.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:ret])
}

// GetClassName reads a window's class name, truncated at 256 UTF-16
// units. A zero-length result is treated as a failure.
func (b *Bindings) GetClassName(hwnd uintptr) (string, bool) {
	buf := make([]uint16, 256)
	ret, _, _ := b.getClassNameWProc.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf[:ret]), true
}

// IsWindowVisible reports the OS visibility flag.
func (b *Bindings) IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := b.isWindowVisibleProc.Call(hwnd)
	return ret != 0
}

// GetWindowProcessID reads the owning process id. Zero is treated as
// a failure.
func (b *Bindings) GetWindowProcessID(hwnd uintptr) (uint32, bool) {
	var pid uint32
	b.getWindowThreadProcessIDProc.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return pid, pid != 0
}

// GetWindowStyle reads GWL_STYLE (offset -16). Zero is treated as a
// failure, even though 0 (WS_OVERLAPPED) is a valid style value; see
// DESIGN.md.
func (b *Bindings) GetWindowStyle(hwnd uintptr) (uint32, bool) {
	index := int32(GWLStyle)
	style, _, _ := b.getWindowLongPtrWProc.Call(hwnd, uintptr(index))
	return uint32(style), style != 0
}

// GetDpiForWindow reads the per-monitor DPI associated with hwnd.
// Zero is a failure.
func (b *Bindings) GetDpiForWindow(hwnd uintptr) uint32 {
	dpi, _, _ := b.getDpiForWindowProc.Call(hwnd)
	return uint32(dpi)
}

// GetDpiForSystem reads the system DPI.
func (b *Bindings) GetDpiForSystem() uint32 {
	dpi, _, _ := b.getDpiForSystemProc.Call()
	return uint32(dpi)
}

// SetProcessDPIAware enables DPI awareness for the process.
func (b *Bindings) SetProcessDPIAware() bool {
	ret, _, _ := b.setProcessDPIAwareProc.Call()
	return ret != 0
}

// PrintWindow renders hwnd (client + non-client, via WM_PRINT where
// supported) into memDC.
func (b *Bindings) PrintWindow(hwnd, memDC uintptr) bool {
	ret, _, _ := b.printWindowProc.Call(hwnd, memDC, PWFull)
	return ret != 0
}

// CURSORINFO mirrors the 24-byte Win32 structure: size, flags, handle,
// and a POINT.
type CURSORINFO struct {
	Size    uint32
	Flags   uint32
	HCursor uintptr
	PtX     int32
	PtY     int32
}

// GetCursorInfo queries the current cursor position and icon.
func (b *Bindings) GetCursorInfo() (CURSORINFO, bool) {
	ci := CURSORINFO{Size: uint32(unsafe.Sizeof(CURSORINFO{}))}
	ret, _, _ := b.getCursorInfoProc.Call(uintptr(unsafe.Pointer(&ci)))
	return ci, ret != 0
}

// ICONINFO mirrors the 32-byte Win32 structure's fields the
// compositor needs: hotspot and the two mask/color bitmap handles.
type ICONINFO struct {
	FIcon    uint32
	XHotspot uint32
	YHotspot uint32
	HbmMask  uintptr
	HbmColor uintptr
}

// GetIconInfo resolves a cursor/icon handle's hotspot and bitmaps.
func (b *Bindings) GetIconInfo(hIcon uintptr) (ICONINFO, bool) {
	var ii ICONINFO
	ret, _, _ := b.getIconInfoProc.Call(hIcon, uintptr(unsafe.Pointer(&ii)))
	return ii, ret != 0
}

// DrawIconEx draws an icon into hdc at (x, y) using the "normal" flag.
func (b *Bindings) DrawIconEx(hdc uintptr, x, y int32, hIcon uintptr) bool {
	ret, _, _ := b.drawIconExProc.Call(hdc, uintptr(x), uintptr(y), hIcon, 0, 0, 0, 0, DrawIconNormal)
	return ret != 0
}

// CreateCompatibleDC creates a memory DC compatible with hdc.
func (b *Bindings) CreateCompatibleDC(hdc uintptr) uintptr {
	dc, _, _ := b.createCompatibleDCProc.Call(hdc)
	return dc
}

// CreateCompatibleBitmap creates a bitmap compatible with hdc at the
// device's native color depth.
func (b *Bindings) CreateCompatibleBitmap(hdc uintptr, width, height int32) uintptr {
	bmp, _, _ := b.createCompatibleBitmapProc.Call(hdc, uintptr(width), uintptr(height))
	return bmp
}

// SelectObject selects obj into hdc, returning the previously
// selected object so callers can restore it before deletion.
func (b *Bindings) SelectObject(hdc, obj uintptr) uintptr {
	prev, _, _ := b.selectObjectProc.Call(hdc, obj)
	return prev
}

// BitBlt copies a rectangle from srcDC to dstDC with the given raster
// operation.
func (b *Bindings) BitBlt(dstDC uintptr, dstX, dstY, width, height int32, srcDC uintptr, srcX, srcY int32, rop uint32) bool {
	ret, _, _ := b.bitBltProc.Call(
		dstDC, uintptr(dstX), uintptr(dstY), uintptr(width), uintptr(height),
		srcDC, uintptr(srcX), uintptr(srcY), uintptr(rop),
	)
	return ret != 0
}

// DeleteObject deletes a GDI object (bitmap, etc). The object must
// not currently be selected into any DC.
func (b *Bindings) DeleteObject(obj uintptr) {
	b.deleteObjectProc.Call(obj)
}

// DeleteDC deletes a memory DC created by CreateCompatibleDC.
func (b *Bindings) DeleteDC(hdc uintptr) {
	b.deleteDCProc.Call(hdc)
}

// GetDIBits copies device-independent pixel data for bitmap into dst,
// using bitmapInfo (a BITMAPINFO-shaped buffer) as the format
// descriptor.
func (b *Bindings) GetDIBits(hdc, bitmap uintptr, height int32, dst unsafe.Pointer, bitmapInfo unsafe.Pointer) bool {
	ret, _, _ := b.getDIBitsProc.Call(
		hdc, bitmap, 0, uintptr(height),
		uintptr(dst), uintptr(bitmapInfo), DIBRGBColors,
	)
	return ret != 0
}

// GetDeviceCaps reads a device capability index (e.g. DesktopHorzRes).
func (b *Bindings) GetDeviceCaps(hdc uintptr, index int32) int32 {
	v, _, _ := b.getDeviceCapsProc.Call(hdc, uintptr(index))
	return int32(v)
}

// CreateDIBSection creates a bitmap whose pixel storage is allocated
// by the OS and returned as an addressable pointer.
func (b *Bindings) CreateDIBSection(hdc uintptr, bitmapInfo unsafe.Pointer) (bitmap uintptr, bits unsafe.Pointer, ok bool) {
	var pBits uintptr
	bmp, _, _ := b.createDIBSectionProc.Call(
		hdc, uintptr(bitmapInfo), DIBRGBColors, uintptr(unsafe.Pointer(&pBits)), 0, 0,
	)
	if bmp == 0 {
		return 0, nil, false
	}
	return bmp, unsafe.Pointer(pBits), true
}

// UTF16PtrFromString is re-exported for callers that need to pass
// Win32 string arguments. No caller in this module uses it.
func UTF16PtrFromString(s string) (*uint16, error) {
	return syscall.UTF16PtrFromString(s)
}
