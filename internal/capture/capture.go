// Package capture implements the orchestration core: acquiring source
// DCs, creating memory DCs and bitmaps, driving the BMP assembler and
// cursor compositor, and guaranteeing release of every native handle
// on every exit path. The full-screen/region path and the window path
// use distinct pixel-acquisition sequences (DIBSection+BitBlt versus
// compatible-bitmap+PrintWindow) and are kept as separate methods
// rather than one handle-dispatching entry point.
package capture

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/nktkas/windows-screenshot/internal/bmp"
	"github.com/nktkas/windows-screenshot/internal/cursor"
	"github.com/nktkas/windows-screenshot/internal/win32"
	"github.com/nktkas/windows-screenshot/internal/wenum"
	"github.com/nktkas/windows-screenshot/pkg/types"
)

// Engine orchestrates a single capture call end to end. Apart from the
// closed flag (guarded by mu), it holds no mutable state beyond the
// shared bindings, enumerator, compositor, and the optional template
// cache.
type Engine struct {
	b      win32.Calls
	wenum  *wenum.Enumerator
	cursor *cursor.Compositor
	cache  *bmp.TemplateCache
	log    *zap.Logger
	mu     sync.Mutex
	closed bool
}

// New constructs an Engine over freshly-loaded native bindings. cacheSize
// <= 0 disables the header-template cache.
func New(log *zap.Logger, cacheSize int) (*Engine, error) {
	b, err := win32.NewBindings()
	if err != nil {
		return nil, types.WrapError(types.ErrLibLoadFailed, "load native bindings", err)
	}
	return NewWithBindings(b, log, cacheSize), nil
}

// NewWithBindings constructs an Engine over an already-loaded (or
// faked) native binding set. Used directly by tests that substitute a
// fake win32.Calls to exercise the engine's logic without real
// user32/gdi32 calls.
func NewWithBindings(b win32.Calls, log *zap.Logger, cacheSize int) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		b:      b,
		wenum:  wenum.New(b, log),
		cursor: cursor.New(b, log),
		cache:  bmp.NewTemplateCache(cacheSize),
		log:    log,
	}
}

// Close releases the loaded native libraries and clears the template
// cache. Idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.cache.Clear()
	return e.b.Close()
}

func (e *Engine) checkOpen() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return types.NewError(types.ErrClosed, "engine is closed")
	}
	return nil
}

// ScreenRect delegates to the window enumerator.
func (e *Engine) ScreenRect() (types.Rect, error) {
	if err := e.checkOpen(); err != nil {
		return types.Rect{}, err
	}
	return e.wenum.ScreenRect()
}

// WindowRect delegates to the window enumerator.
func (e *Engine) WindowRect(id types.WindowIdentifier) (types.Rect, error) {
	if err := e.checkOpen(); err != nil {
		return types.Rect{}, err
	}
	return e.wenum.WindowRect(id)
}

// WindowList delegates to the window enumerator.
func (e *Engine) WindowList() ([]types.WindowInfo, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	return e.wenum.Enumerate()
}

// CaptureScreen captures the desktop via a DIBSection and BitBlt. rect
// overrides the full-screen default when non-nil.
func (e *Engine) CaptureScreen(rect *types.Rect, opts *types.CaptureOptions) (types.BmpBytes, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = types.DefaultCaptureOptions()
	}

	var region types.Rect
	if rect != nil {
		region = types.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Right, Bottom: rect.Bottom}
	} else {
		full, err := e.wenum.ScreenRect()
		if err != nil {
			return nil, err
		}
		region = full
	}
	width, height := region.Width(), region.Height()
	if width <= 0 || height <= 0 {
		return nil, types.NewError(types.ErrInvalidRegion, "non-positive capture dimensions")
	}

	screenDC := e.b.GetDC(0)
	if screenDC == 0 {
		return nil, types.NewError(types.ErrDCUnavailable, "GetDC(0) failed")
	}
	defer e.b.ReleaseDC(0, screenDC)

	structure := bmp.BuildCached(e.cache, width, height, opts.BitDepth, opts.PaletteType)

	memDC := e.b.CreateCompatibleDC(screenDC)
	if memDC == 0 {
		return nil, types.NewError(types.ErrDCUnavailable, "CreateCompatibleDC failed")
	}
	defer e.b.DeleteDC(memDC)

	dib, bits, ok := e.b.CreateDIBSection(memDC, unsafe.Pointer(&structure.GdiInfo()[0]))
	if !ok {
		return nil, types.NewError(types.ErrDCUnavailable, "CreateDIBSection failed")
	}
	defer e.b.DeleteObject(dib)

	prev := e.b.SelectObject(memDC, dib)
	defer e.b.SelectObject(memDC, prev)

	rop := uint32(win32.SRCCOPY | win32.CaptureBlt)
	if !e.b.BitBlt(memDC, 0, 0, width, height, screenDC, region.Left, region.Top, rop) {
		return nil, types.NewError(types.ErrBlitFailed, "BitBlt failed")
	}

	if opts.IncludeCursor {
		if err := e.cursor.Compose(memDC, region.Left, region.Top); err != nil {
			return nil, err
		}
	}

	pixels := structure.Pixels()
	src := unsafe.Slice((*byte)(bits), len(pixels))
	copy(pixels, src)

	e.log.Debug("captured screen region", zap.Int32("width", width), zap.Int32("height", height))
	return types.BmpBytes(structure.Buf), nil
}

// CaptureWindow captures id via a compatible bitmap, PrintWindow, and
// GetDIBits.
func (e *Engine) CaptureWindow(id types.WindowIdentifier, opts *types.CaptureOptions) (types.BmpBytes, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = types.DefaultCaptureOptions()
	}

	handle, err := e.wenum.Resolve(id)
	if err != nil {
		return nil, err
	}
	rect, err := e.wenum.WindowRect(types.ByHandle(handle))
	if err != nil {
		return nil, err
	}
	width, height := rect.Width(), rect.Height()
	if width <= 0 || height <= 0 {
		return nil, types.NewError(types.ErrInvalidRegion, "non-positive window dimensions")
	}

	windowDC := e.b.GetWindowDC(uintptr(handle))
	if windowDC == 0 {
		return nil, types.NewError(types.ErrDCUnavailable, "GetWindowDC failed")
	}
	defer e.b.ReleaseDC(uintptr(handle), windowDC)

	memDC := e.b.CreateCompatibleDC(windowDC)
	if memDC == 0 {
		return nil, types.NewError(types.ErrDCUnavailable, "CreateCompatibleDC failed")
	}
	defer e.b.DeleteDC(memDC)

	compatBitmap := e.b.CreateCompatibleBitmap(windowDC, width, height)
	if compatBitmap == 0 {
		return nil, types.NewError(types.ErrDCUnavailable, "CreateCompatibleBitmap failed")
	}
	defer e.b.DeleteObject(compatBitmap)

	prev := e.b.SelectObject(memDC, compatBitmap)
	defer e.b.SelectObject(memDC, prev)

	if !e.b.PrintWindow(uintptr(handle), memDC) {
		return nil, types.NewError(types.ErrPrintFailed, "PrintWindow failed")
	}

	if opts.IncludeCursor {
		if err := e.cursor.Compose(memDC, rect.Left, rect.Top); err != nil {
			return nil, err
		}
	}

	structure := bmp.BuildCached(e.cache, width, height, opts.BitDepth, opts.PaletteType)
	pixels := structure.Pixels()
	if !e.b.GetDIBits(memDC, compatBitmap, height, unsafe.Pointer(&pixels[0]), unsafe.Pointer(&structure.GdiInfo()[0])) {
		return nil, types.NewError(types.ErrGetBitsFailed, "GetDIBits failed")
	}

	e.log.Debug("captured window", zap.Uintptr("handle", uintptr(handle)), zap.Int32("width", width), zap.Int32("height", height))
	return types.BmpBytes(structure.Buf), nil
}
