package bmp

import (
	"encoding/binary"

	"github.com/nktkas/windows-screenshot/pkg/types"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// Structure is an assembled BMP buffer: file header, info header,
// optional palette, and pixel region, all in one contiguous
// allocation. GdiInfo and Pixels are addressable views into that same
// backing array for native calls to read/fill.
type Structure struct {
	Buf    []byte
	Width  int32
	Height int32

	pixelOffset int
	stride      int
}

// GdiInfo returns the BITMAPINFO-shaped view (info header + palette)
// that GetDIBits/CreateDIBSection expect as their format descriptor.
func (s *Structure) GdiInfo() []byte {
	return s.Buf[fileHeaderSize : fileHeaderSize+infoHeaderSize+s.paletteBytes()]
}

// Pixels returns the pixel-region slice, stride*height bytes, ready
// to be filled by a native call or copied into from OS-owned memory.
func (s *Structure) Pixels() []byte {
	return s.Buf[s.pixelOffset:]
}

// Stride returns the row stride in bytes (4-byte aligned).
func (s *Structure) Stride() int { return s.stride }

func (s *Structure) paletteBytes() int {
	return len(s.Buf[fileHeaderSize+infoHeaderSize:s.pixelOffset])
}

// numColors returns the palette entry count for a given bit depth: 2,
// 16, or 256 for 1/4/8-bit, 0 otherwise.
func numColors(bitDepth int) int {
	switch bitDepth {
	case 1:
		return 2
	case 4:
		return 16
	case 8:
		return 256
	default:
		return 0
	}
}

// Stride computes the BMP row stride for a given width and bit depth:
// floor((bitDepth*width + 31) / 32) * 4.
func Stride(width int32, bitDepth int) int {
	bits := int(width)*bitDepth + 31
	return (bits / 32) * 4
}

// Build assembles a complete BMP buffer for the given dimensions, bit
// depth, and palette selection. The pixel region is left zero-filled
// for the caller to populate. The info header always declares a
// positive (bottom-up) height, one plane, and BI_RGB compression.
func Build(width, height int32, bitDepth int, palette types.PaletteType) *Structure {
	nColors := numColors(bitDepth)
	stride := Stride(width, bitDepth)
	paletteBytes := nColors * 4
	pixelOffset := fileHeaderSize + infoHeaderSize + paletteBytes
	fileSize := pixelOffset + stride*int(height)

	buf := make([]byte, fileSize)

	// File header (14 bytes).
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(buf[6:10], 0) // reserved
	binary.LittleEndian.PutUint32(buf[10:14], uint32(pixelOffset))

	// Info header (40 bytes), BITMAPINFOHEADER layout.
	ih := buf[14:54]
	binary.LittleEndian.PutUint32(ih[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(ih[4:8], uint32(int32(width)))
	binary.LittleEndian.PutUint32(ih[8:12], uint32(int32(height))) // positive: bottom-up
	binary.LittleEndian.PutUint16(ih[12:14], 1)                    // planes
	binary.LittleEndian.PutUint16(ih[14:16], uint16(bitDepth))
	binary.LittleEndian.PutUint32(ih[16:20], 0) // compression = BI_RGB
	binary.LittleEndian.PutUint32(ih[20:24], uint32(stride*int(height)))
	binary.LittleEndian.PutUint32(ih[24:28], 0) // x pels/meter
	binary.LittleEndian.PutUint32(ih[28:32], 0) // y pels/meter
	binary.LittleEndian.PutUint32(ih[32:36], uint32(nColors))
	binary.LittleEndian.PutUint32(ih[36:40], uint32(nColors))

	// Palette, if any.
	if nColors > 0 {
		pal := buf[54:pixelOffset]
		writePalette(pal, bitDepth, palette)
	}

	return &Structure{
		Buf:         buf,
		Width:       width,
		Height:      height,
		pixelOffset: pixelOffset,
		stride:      stride,
	}
}

func writePalette(dst []byte, bitDepth int, palette types.PaletteType) {
	switch bitDepth {
	case 1:
		encodeBGRA(dst[:0], Mono1[:])
	case 4:
		encodeVGA16(dst[:0], VGA16[:])
	case 8:
		if palette == types.PaletteGrayscale {
			encodeBGRA(dst[:0], Grayscale256[:])
		} else {
			encodeBGRA(dst[:0], Halftone256[:])
		}
	}
}
