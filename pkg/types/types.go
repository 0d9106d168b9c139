// Package types holds the data model shared between the capture engine,
// the window enumerator, and the BMP codec: geometry, window identity,
// capture options, and the decoder's output image.
package types

// Rect is a device-pixel rectangle. A valid capture region has
// Right > Left and Bottom > Top.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right - Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Valid reports whether the rectangle has positive width and height.
func (r Rect) Valid() bool { return r.Width() > 0 && r.Height() > 0 }

// Size is a strictly positive width/height pair.
type Size struct {
	Cx int32
	Cy int32
}

// WindowHandle is an opaque, OS-owned top-level window identifier.
// The engine borrows it; it never allocates or frees one.
type WindowHandle uintptr

// WindowIdentifierKind discriminates the four ways a window can be
// named for resolution.
type WindowIdentifierKind int

const (
	ByTitleKind WindowIdentifierKind = iota
	ByClassNameKind
	ByProcessIDKind
	ByHandleKind
)

// WindowIdentifier is a tagged union carrying exactly one of a title,
// a class name, a process id, or a handle.
type WindowIdentifier struct {
	Kind      WindowIdentifierKind
	Title     string
	ClassName string
	ProcessID uint32
	Handle    WindowHandle
}

// ByTitle identifies a window by its exact, case-sensitive title.
func ByTitle(title string) WindowIdentifier {
	return WindowIdentifier{Kind: ByTitleKind, Title: title}
}

// ByClassName identifies a window by its exact, case-sensitive class name.
func ByClassName(className string) WindowIdentifier {
	return WindowIdentifier{Kind: ByClassNameKind, ClassName: className}
}

// ByProcessID identifies the first visible window owned by a process.
func ByProcessID(pid uint32) WindowIdentifier {
	return WindowIdentifier{Kind: ByProcessIDKind, ProcessID: pid}
}

// ByHandle identifies a window directly by handle. No validation is
// performed; a caller holding a handle is trusted.
func ByHandle(h WindowHandle) WindowIdentifier {
	return WindowIdentifier{Kind: ByHandleKind, Handle: h}
}

// WindowStyle captures the subset of GWL_STYLE bits the engine reports.
type WindowStyle struct {
	IsMinimized bool
	IsMaximized bool
	IsDisabled  bool
}

// WindowInfo is a point-in-time snapshot produced by enumeration. The
// underlying handle may be invalidated independently of the snapshot;
// the engine does not observe that and surfaces a native failure on
// next use instead.
type WindowInfo struct {
	Handle    WindowHandle
	Title     string
	ClassName string
	ProcessID uint32
	Position  Rect
	Style     WindowStyle
}

// PaletteType selects the 8-bit palette variant. It is observed only
// when BitDepth == 8.
type PaletteType int

const (
	PaletteHalftone PaletteType = iota
	PaletteGrayscale
)

// CaptureOptions configures a capture call. The zero value is not
// valid; use DefaultCaptureOptions.
type CaptureOptions struct {
	BitDepth      int
	PaletteType   PaletteType
	IncludeCursor bool
}

// DefaultCaptureOptions returns the default options: 24-bit, halftone
// palette (irrelevant at 24-bit), cursor included.
func DefaultCaptureOptions() *CaptureOptions {
	return &CaptureOptions{
		BitDepth:      24,
		PaletteType:   PaletteHalftone,
		IncludeCursor: true,
	}
}

// BmpBytes is a complete, self-contained BMP v3 byte stream.
type BmpBytes []byte

// RGBImage is the BMP Decoder's output: a packed, top-down pixel
// buffer with Channels either 3 (RGB) or 4 (RGBA).
type RGBImage struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}
