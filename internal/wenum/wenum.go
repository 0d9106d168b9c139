// Package wenum enumerates top-level windows and resolves DPI-scaled
// window and screen geometry, walking the top-level sibling chain with
// FindWindowEx rather than an EnumWindows callback, and applying
// per-edge ceiling rounding when scaling a raw rectangle by DPI.
package wenum

import (
	"math"

	"go.uber.org/zap"

	"github.com/nktkas/windows-screenshot/internal/win32"
	"github.com/nktkas/windows-screenshot/pkg/types"
)

// Enumerator walks top-level windows and answers geometry queries
// through a shared native binding set.
type Enumerator struct {
	b   win32.Calls
	log *zap.Logger
}

// New returns an Enumerator over b. log may be nil.
func New(b win32.Calls, log *zap.Logger) *Enumerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enumerator{b: b, log: log}
}

// ScreenRect returns {0, 0, DESKTOP_HORZRES, DESKTOP_VERTRES} read
// from the primary screen DC.
func (e *Enumerator) ScreenRect() (types.Rect, error) {
	dc := e.b.GetDC(0)
	if dc == 0 {
		e.log.Error("GetDC(0) failed")
		return types.Rect{}, types.NewError(types.ErrDCUnavailable, "GetDC(0) failed")
	}
	defer func() {
		e.b.ReleaseDC(0, dc)
		e.log.Debug("released screen DC", zap.Uintptr("dc", dc))
	}()

	horz := e.b.GetDeviceCaps(dc, win32.DesktopHorzRes)
	vert := e.b.GetDeviceCaps(dc, win32.DesktopVertRes)
	return types.Rect{Left: 0, Top: 0, Right: horz, Bottom: vert}, nil
}

// WindowRect resolves identifier to a handle, reads its raw OS
// rectangle, and returns it DPI-scaled with per-edge ceiling rounding.
func (e *Enumerator) WindowRect(identifier types.WindowIdentifier) (types.Rect, error) {
	h, err := e.Resolve(identifier)
	if err != nil {
		return types.Rect{}, err
	}

	raw, ok := e.b.GetWindowRect(uintptr(h))
	if !ok {
		return types.Rect{}, types.NewError(types.ErrOSFailure, "GetWindowRect failed")
	}

	dpi := e.b.GetDpiForWindow(uintptr(h))
	if dpi == 0 {
		e.log.Error("GetDpiForWindow returned 0", zap.Uintptr("handle", uintptr(h)))
		return types.Rect{}, types.NewError(types.ErrDPIUnavailable, "GetDpiForWindow returned 0")
	}
	scale := float64(dpi) / 96.0

	return types.Rect{
		Left:   ceilScale(raw.Left, scale),
		Top:    ceilScale(raw.Top, scale),
		Right:  ceilScale(raw.Right, scale),
		Bottom: ceilScale(raw.Bottom, scale),
	}, nil
}

func ceilScale(edge int32, scale float64) int32 {
	return int32(math.Ceil(float64(edge) * scale))
}

// Enumerate walks the top-level sibling chain starting from the root,
// skipping invisible windows, and returns a WindowInfo per visible
// entry in OS sibling order.
func (e *Enumerator) Enumerate() ([]types.WindowInfo, error) {
	var out []types.WindowInfo

	prev := uintptr(0)
	first := true
	for {
		var hwnd uintptr
		if first {
			hwnd = e.b.FindWindowNext(0)
			first = false
		} else {
			hwnd = e.b.FindWindowNext(prev)
		}
		if hwnd == 0 {
			break
		}
		prev = hwnd

		if !e.b.IsWindowVisible(hwnd) {
			continue
		}

		info, err := e.describe(hwnd)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}

	return out, nil
}

// Resolve maps identifier to a handle. ByHandle passes through
// unchanged with no validation; the other three variants scan visible
// windows for an exact match.
func (e *Enumerator) Resolve(identifier types.WindowIdentifier) (types.WindowHandle, error) {
	if identifier.Kind == types.ByHandleKind {
		return identifier.Handle, nil
	}

	prev := uintptr(0)
	first := true
	for {
		var hwnd uintptr
		if first {
			hwnd = e.b.FindWindowNext(0)
			first = false
		} else {
			hwnd = e.b.FindWindowNext(prev)
		}
		if hwnd == 0 {
			break
		}
		prev = hwnd

		if !e.b.IsWindowVisible(hwnd) {
			continue
		}

		switch identifier.Kind {
		case types.ByTitleKind:
			if e.b.GetWindowText(hwnd) == identifier.Title {
				return types.WindowHandle(hwnd), nil
			}
		case types.ByClassNameKind:
			if cn, ok := e.b.GetClassName(hwnd); ok && cn == identifier.ClassName {
				return types.WindowHandle(hwnd), nil
			}
		case types.ByProcessIDKind:
			if pid, ok := e.b.GetWindowProcessID(hwnd); ok && pid == identifier.ProcessID {
				return types.WindowHandle(hwnd), nil
			}
		}
	}

	return 0, types.NewError(types.ErrWindowNotFound, "no matching visible window")
}

func (e *Enumerator) describe(hwnd uintptr) (types.WindowInfo, error) {
	title := e.b.GetWindowText(hwnd)

	className, ok := e.b.GetClassName(hwnd)
	if !ok {
		return types.WindowInfo{}, types.NewError(types.ErrClassNameUnavailable, "GetClassName failed")
	}

	pid, ok := e.b.GetWindowProcessID(hwnd)
	if !ok {
		return types.WindowInfo{}, types.NewError(types.ErrProcessIDUnavailable, "GetWindowThreadProcessId returned 0")
	}

	style, ok := e.b.GetWindowStyle(hwnd)
	if !ok {
		return types.WindowInfo{}, types.NewError(types.ErrStyleUnavailable, "GetWindowLongPtrW returned 0")
	}

	rect, err := e.WindowRect(types.ByHandle(types.WindowHandle(hwnd)))
	if err != nil {
		return types.WindowInfo{}, err
	}

	return types.WindowInfo{
		Handle:    types.WindowHandle(hwnd),
		Title:     title,
		ClassName: className,
		ProcessID: pid,
		Position:  rect,
		Style:     styleFromBits(style),
	}, nil
}

// Windows style bits relevant to WindowStyle; values match the
// standard WS_* constants.
const (
	wsMinimize = 0x20000000
	wsMaximize = 0x01000000
	wsDisabled = 0x08000000
)

func styleFromBits(style uint32) types.WindowStyle {
	return types.WindowStyle{
		IsMinimized: style&wsMinimize != 0,
		IsMaximized: style&wsMaximize != 0,
		IsDisabled:  style&wsDisabled != 0,
	}
}
