package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nktkas/windows-screenshot/internal/win32"
	"github.com/nktkas/windows-screenshot/internal/win32/win32fake"
)

func TestCompose_DrawsWhenBothFlagsSet(t *testing.T) {
	var drawnX, drawnY int32
	drawn := false
	f := &win32fake.Fake{
		GetCursorInfoFunc: func() (win32.CURSORINFO, bool) {
			return win32.CURSORINFO{Flags: 0x01 | 0x02, HCursor: 7, PtX: 110, PtY: 120}, true
		},
		GetIconInfoFunc: func(hIcon uintptr) (win32.ICONINFO, bool) {
			return win32.ICONINFO{XHotspot: 5, YHotspot: 5, HbmMask: 50, HbmColor: 51}, true
		},
		GetDpiForSystemFunc: func() uint32 { return 96 },
		DrawIconExFunc: func(hdc uintptr, x, y int32, hIcon uintptr) bool {
			drawn = true
			drawnX, drawnY = x, y
			return true
		},
	}
	c := New(f, nil)

	err := c.Compose(999, 100, 100)
	require.NoError(t, err)
	require.True(t, drawn)
	require.Equal(t, int32(5), drawnX) // 110-100-5
	require.Equal(t, int32(15), drawnY) // 120-100-5
	require.ElementsMatch(t, []uintptr{50, 51}, f.Released)
}

func TestCompose_SkipsWhenOnlyShowingBitSet(t *testing.T) {
	drawn := false
	f := &win32fake.Fake{
		GetCursorInfoFunc: func() (win32.CURSORINFO, bool) {
			return win32.CURSORINFO{Flags: 0x01}, true // only the "showing" bit, not 0x02
		},
		DrawIconExFunc: func(hdc uintptr, x, y int32, hIcon uintptr) bool {
			drawn = true
			return true
		},
	}
	c := New(f, nil)

	err := c.Compose(999, 0, 0)
	require.NoError(t, err)
	require.False(t, drawn, "the AND-bug requires both 0x01 and 0x02 before drawing")
}

func TestCompose_CursorUnavailable(t *testing.T) {
	f := &win32fake.Fake{
		GetCursorInfoFunc: func() (win32.CURSORINFO, bool) { return win32.CURSORINFO{}, false },
	}
	c := New(f, nil)

	err := c.Compose(999, 0, 0)
	require.Error(t, err)
}

func TestCompose_ReleasesIconBitmapsOnDrawFailure(t *testing.T) {
	f := &win32fake.Fake{
		GetCursorInfoFunc: func() (win32.CURSORINFO, bool) {
			return win32.CURSORINFO{Flags: 0x03, HCursor: 1}, true
		},
		GetIconInfoFunc: func(hIcon uintptr) (win32.ICONINFO, bool) {
			return win32.ICONINFO{HbmMask: 10, HbmColor: 11}, true
		},
		DrawIconExFunc: func(hdc uintptr, x, y int32, hIcon uintptr) bool { return false },
	}
	c := New(f, nil)

	err := c.Compose(999, 0, 0)
	require.NoError(t, err) // DrawIconEx's own failure is not surfaced to the caller
	require.ElementsMatch(t, []uintptr{10, 11}, f.Released)
}
