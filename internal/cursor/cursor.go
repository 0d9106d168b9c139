// Package cursor composites the current mouse cursor into a capture
// target DC, translating its position by the capture origin and
// scaling it by the system DPI.
package cursor

import (
	"math"

	"go.uber.org/zap"

	"github.com/nktkas/windows-screenshot/internal/win32"
	"github.com/nktkas/windows-screenshot/pkg/types"
)

// cursorShowing and cursorOnTop are the two CURSORINFO flag bits that
// must both be set before the cursor is drawn.
const (
	cursorShowing = 0x01
	cursorOnTop   = 0x02
)

// Compositor draws the system cursor into a capture DC.
type Compositor struct {
	b   win32.Calls
	log *zap.Logger
}

// New returns a Compositor over b. log may be nil.
func New(b win32.Calls, log *zap.Logger) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{b: b, log: log}
}

// Compose queries the current cursor and, if both the cursorShowing
// and cursorOnTop flag bits are set, draws it into targetDC translated by (originX, originY)
// and scaled by the system DPI.
func (c *Compositor) Compose(targetDC uintptr, originX, originY int32) error {
	info, ok := c.b.GetCursorInfo()
	if !ok {
		return types.NewError(types.ErrCursorUnavailable, "GetCursorInfo failed")
	}

	if info.Flags&cursorShowing == 0 || info.Flags&cursorOnTop == 0 {
		return nil
	}

	icon, ok := c.b.GetIconInfo(info.HCursor)
	if !ok {
		return types.NewError(types.ErrCursorUnavailable, "GetIconInfo failed")
	}
	defer func() {
		c.b.DeleteObject(icon.HbmMask)
		c.b.DeleteObject(icon.HbmColor)
		c.log.Debug("released cursor icon bitmaps")
	}()

	c.b.SetProcessDPIAware()
	dpi := c.b.GetDpiForSystem()
	scale := float64(dpi) / 96.0

	x := int32(math.Round(float64(info.PtX-originX-int32(icon.XHotspot)) * scale))
	y := int32(math.Round(float64(info.PtY-originY-int32(icon.YHotspot)) * scale))

	c.b.DrawIconEx(targetDC, x, y, info.HCursor)
	return nil
}
