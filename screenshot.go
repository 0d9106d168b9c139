// Package screenshot captures raster images of the Windows desktop or
// of individual top-level windows as self-contained BMP byte streams,
// enumerates top-level windows, answers geometry queries about them,
// and decodes BMP byte streams (including ones produced elsewhere)
// into packed RGB/RGBA pixel buffers.
package screenshot

import (
	"go.uber.org/zap"

	"github.com/nktkas/windows-screenshot/internal/bmp"
	"github.com/nktkas/windows-screenshot/internal/capture"
	"github.com/nktkas/windows-screenshot/pkg/types"
)

// Engine is the entry point for every capture and enumeration
// operation. Construct with New; release native resources with
// Close.
type Engine struct {
	core *capture.Engine
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

type engineConfig struct {
	logger        *zap.Logger
	templateCache int
}

// WithLogger injects a structured logger. The default is a no-op
// logger, matching library (not service) conventions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithTemplateCacheSize bounds the BMP header-template cache to size
// entries. 0 disables the cache. The default is disabled.
func WithTemplateCacheSize(size int) Option {
	return func(c *engineConfig) { c.templateCache = size }
}

// New loads the native bindings and constructs an Engine.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{logger: zap.NewNop(), templateCache: 0}
	for _, opt := range opts {
		opt(cfg)
	}

	core, err := capture.New(cfg.logger, cfg.templateCache)
	if err != nil {
		return nil, err
	}
	return &Engine{core: core}, nil
}

// CaptureScreen captures the desktop, or the sub-rectangle rect if
// non-nil, and returns a complete BMP byte stream. opts defaults to
// types.DefaultCaptureOptions() when nil.
func (e *Engine) CaptureScreen(rect *types.Rect, opts *types.CaptureOptions) (types.BmpBytes, error) {
	return e.core.CaptureScreen(rect, opts)
}

// CaptureWindow resolves id to a top-level window and returns a
// complete BMP byte stream of it. opts defaults to
// types.DefaultCaptureOptions() when nil.
func (e *Engine) CaptureWindow(id types.WindowIdentifier, opts *types.CaptureOptions) (types.BmpBytes, error) {
	return e.core.CaptureWindow(id, opts)
}

// GetScreenRect returns the primary screen's rectangle.
func (e *Engine) GetScreenRect() (types.Rect, error) {
	return e.core.ScreenRect()
}

// GetWindowRect returns id's DPI-scaled window rectangle.
func (e *Engine) GetWindowRect(id types.WindowIdentifier) (types.Rect, error) {
	return e.core.WindowRect(id)
}

// GetWindowList enumerates every visible top-level window.
func (e *Engine) GetWindowList() ([]types.WindowInfo, error) {
	return e.core.WindowList()
}

// Close releases the loaded native libraries. Idempotent. Any capture
// operation called after Close fails with types.ErrClosed.
func (e *Engine) Close() error {
	return e.core.Close()
}

// BmpToRGB decodes a BMP byte stream into a packed top-down RGB/RGBA
// buffer. It is platform-agnostic and does not require an Engine.
func BmpToRGB(data []byte) (types.RGBImage, error) {
	return bmp.Decode(data)
}
