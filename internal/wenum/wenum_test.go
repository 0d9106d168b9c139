package wenum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nktkas/windows-screenshot/internal/win32"
	"github.com/nktkas/windows-screenshot/internal/win32/win32fake"
	"github.com/nktkas/windows-screenshot/pkg/types"
)

func TestScreenRect(t *testing.T) {
	f := &win32fake.Fake{
		GetDCFunc: func(hwnd uintptr) uintptr { return 1 },
		GetDeviceCapsFunc: func(hdc uintptr, index int32) int32 {
			switch index {
			case win32.DesktopHorzRes:
				return 1920
			case win32.DesktopVertRes:
				return 1080
			}
			return 0
		},
	}
	e := New(f, nil)

	rect, err := e.ScreenRect()
	require.NoError(t, err)
	require.Equal(t, types.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}, rect)
	require.Equal(t, []uintptr{1}, f.Released)
}

func TestScreenRect_DCUnavailable(t *testing.T) {
	f := &win32fake.Fake{GetDCFunc: func(hwnd uintptr) uintptr { return 0 }}
	e := New(f, nil)

	_, err := e.ScreenRect()
	require.ErrorIs(t, err, types.NewError(types.ErrDCUnavailable, ""))
}

func TestWindowRect_DPIScalingCeiling(t *testing.T) {
	f := &win32fake.Fake{
		GetWindowRectFunc: func(hwnd uintptr) (win32.RECT, bool) {
			return win32.RECT{Left: 10, Top: 10, Right: 101, Bottom: 101}, true
		},
		GetDpiForWindowFunc: func(hwnd uintptr) uint32 { return 144 }, // scale 1.5
	}
	e := New(f, nil)

	rect, err := e.WindowRect(types.ByHandle(42))
	require.NoError(t, err)
	// 10*1.5=15, 101*1.5=151.5 -> ceil 152
	require.Equal(t, types.Rect{Left: 15, Top: 15, Right: 152, Bottom: 152}, rect)
}

func TestWindowRect_DPIUnavailable(t *testing.T) {
	f := &win32fake.Fake{
		GetWindowRectFunc: func(hwnd uintptr) (win32.RECT, bool) { return win32.RECT{}, true },
		GetDpiForWindowFunc: func(hwnd uintptr) uint32 { return 0 },
	}
	e := New(f, nil)

	_, err := e.WindowRect(types.ByHandle(1))
	require.ErrorIs(t, err, types.NewError(types.ErrDPIUnavailable, ""))
}

func TestEnumerate_SkipsInvisibleAndDescribes(t *testing.T) {
	order := []uintptr{100, 200, 300, 0}
	step := 0
	f := &win32fake.Fake{
		FindWindowNextFunc: func(prev uintptr) uintptr {
			h := order[step]
			step++
			return h
		},
		IsWindowVisibleFunc: func(hwnd uintptr) bool { return hwnd != 200 },
		GetWindowTextFunc: func(hwnd uintptr) string {
			if hwnd == 100 {
				return "Notepad"
			}
			return "Other"
		},
		GetClassNameFunc:      func(hwnd uintptr) (string, bool) { return "ClassA", true },
		GetWindowProcessIDFunc: func(hwnd uintptr) (uint32, bool) { return uint32(hwnd), true },
		GetWindowStyleFunc:    func(hwnd uintptr) (uint32, bool) { return 0x10000000, true },
		GetWindowRectFunc:     func(hwnd uintptr) (win32.RECT, bool) { return win32.RECT{}, true },
		GetDpiForWindowFunc:   func(hwnd uintptr) uint32 { return 96 },
	}
	e := New(f, nil)

	list, err := e.Enumerate()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, types.WindowHandle(100), list[0].Handle)
	require.Equal(t, "Notepad", list[0].Title)
	require.Equal(t, types.WindowHandle(300), list[1].Handle)
}

func TestResolve_ByTitleExactMatch(t *testing.T) {
	order := []uintptr{1, 2, 0}
	step := 0
	f := &win32fake.Fake{
		FindWindowNextFunc: func(prev uintptr) uintptr {
			h := order[step]
			step++
			return h
		},
		IsWindowVisibleFunc: func(hwnd uintptr) bool { return true },
		GetWindowTextFunc: func(hwnd uintptr) string {
			if hwnd == 2 {
				return "target"
			}
			return "other"
		},
	}
	e := New(f, nil)

	h, err := e.Resolve(types.ByTitle("target"))
	require.NoError(t, err)
	require.Equal(t, types.WindowHandle(2), h)
}

func TestResolve_ByHandlePassesThroughUnvalidated(t *testing.T) {
	e := New(&win32fake.Fake{}, nil)
	h, err := e.Resolve(types.ByHandle(999))
	require.NoError(t, err)
	require.Equal(t, types.WindowHandle(999), h)
}

func TestResolve_NotFound(t *testing.T) {
	f := &win32fake.Fake{
		FindWindowNextFunc:  func(prev uintptr) uintptr { return 0 },
		IsWindowVisibleFunc: func(hwnd uintptr) bool { return true },
	}
	e := New(f, nil)

	_, err := e.Resolve(types.ByTitle("nope"))
	require.ErrorIs(t, err, types.NewError(types.ErrWindowNotFound, ""))
}
