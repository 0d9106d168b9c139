// Decoder parses a BMP byte stream (uncompressed, RLE4, RLE8, or
// BITFIELDS; 1/4/8/16/24/32-bit) into a packed top-down RGB/RGBA
// buffer.
package bmp

import (
	"encoding/binary"
	"fmt"

	"github.com/nktkas/windows-screenshot/pkg/types"
)

const (
	biRGB       = 0
	biRLE8      = 1
	biRLE4      = 2
	biBitfields = 3
)

// Decode parses data into an RGBImage. Channels is 4 iff the source
// bit depth is 32.
func Decode(data []byte) (types.RGBImage, error) {
	if len(data) < 54 || data[0] != 'B' || data[1] != 'M' {
		return types.RGBImage{}, types.NewError(types.ErrInvalidBMP, "missing BM signature")
	}

	pixelOffset := int(binary.LittleEndian.Uint32(data[10:14]))
	infoHeaderSz := binary.LittleEndian.Uint32(data[14:18])
	width := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	signedHeight := int32(binary.LittleEndian.Uint32(data[22:26]))
	bitDepth := int(binary.LittleEndian.Uint16(data[28:30]))
	compression := binary.LittleEndian.Uint32(data[30:34])
	colorsUsed := int(binary.LittleEndian.Uint32(data[46:50]))

	if width <= 0 {
		return types.RGBImage{}, types.NewError(types.ErrInvalidBMP, "non-positive width")
	}
	isTopDown := signedHeight < 0
	height := int(signedHeight)
	if height < 0 {
		height = -height
	}
	if height == 0 {
		return types.RGBImage{}, types.NewError(types.ErrInvalidBMP, "zero height")
	}
	if colorsUsed == 0 && bitDepth <= 8 {
		colorsUsed = 1 << uint(bitDepth)
	}

	channels := 3
	if bitDepth == 32 {
		channels = 4
	}
	out := make([]byte, width*height*channels)

	switch compression {
	case biRGB:
		if pixelOffset+stridedSize(width, height, bitDepth) > len(data) {
			return types.RGBImage{}, types.NewError(types.ErrInvalidBMP, "pixel data truncated")
		}
		if err := decodeUncompressed(data, pixelOffset, width, height, bitDepth, colorsUsed, isTopDown, channels, out); err != nil {
			return types.RGBImage{}, err
		}
	case biRLE8:
		if bitDepth != 8 {
			return types.RGBImage{}, types.NewError(types.ErrUnsupportedCompression, "RLE8 requires 8-bit depth")
		}
		if err := decodeRLE8(data, pixelOffset, width, height, colorsUsed, isTopDown, out); err != nil {
			return types.RGBImage{}, err
		}
	case biRLE4:
		if bitDepth != 4 {
			return types.RGBImage{}, types.NewError(types.ErrUnsupportedCompression, "RLE4 requires 4-bit depth")
		}
		if err := decodeRLE4(data, pixelOffset, width, height, colorsUsed, isTopDown, out); err != nil {
			return types.RGBImage{}, err
		}
	case biBitfields:
		if bitDepth != 16 && bitDepth != 32 {
			return types.RGBImage{}, types.NewError(types.ErrUnsupportedCompression, "BITFIELDS requires 16 or 32-bit depth")
		}
		if err := decodeBitfields(data, pixelOffset, width, height, bitDepth, infoHeaderSz, isTopDown, channels, out); err != nil {
			return types.RGBImage{}, err
		}
	default:
		return types.RGBImage{}, types.NewError(types.ErrUnsupportedCompression, fmt.Sprintf("compression %d", compression))
	}

	return types.RGBImage{Width: width, Height: height, Channels: channels, Data: out}, nil
}

func stridedSize(width, height, bitDepth int) int {
	return Stride(int32(width), bitDepth) * height
}

func readPalette(data []byte, colorsUsed int) []RGB {
	base := fileHeaderSize + infoHeaderSize
	pal := make([]RGB, colorsUsed)
	for i := 0; i < colorsUsed; i++ {
		off := base + i*4
		if off+3 >= len(data) {
			break
		}
		pal[i] = RGB{R: data[off+2], G: data[off+1], B: data[off+0]}
	}
	return pal
}

func decodeUncompressed(data []byte, pixelOffset, width, height, bitDepth, colorsUsed int, isTopDown bool, channels int, out []byte) error {
	stride := Stride(int32(width), bitDepth)
	var pal []RGB
	if bitDepth <= 8 {
		pal = readPalette(data, colorsUsed)
	}

	for y := 0; y < height; y++ {
		srcY := y
		if !isTopDown {
			srcY = height - 1 - y
		}
		row := data[pixelOffset+srcY*stride:]
		dst := out[y*width*channels:]

		switch bitDepth {
		case 1:
			for x := 0; x < width; x++ {
				b := row[x/8]
				idx := (b >> uint(7-x%8)) & 1
				writeRGB(dst, x, channels, lookup(pal, idx))
			}
		case 4:
			for x := 0; x < width; x++ {
				b := row[x/2]
				var nib byte
				if x%2 == 0 {
					nib = (b >> 4) & 0xF
				} else {
					nib = b & 0xF
				}
				writeRGB(dst, x, channels, lookup(pal, nib))
			}
		case 8:
			for x := 0; x < width; x++ {
				writeRGB(dst, x, channels, lookup(pal, row[x]))
			}
		case 16:
			for x := 0; x < width; x++ {
				p := binary.LittleEndian.Uint16(row[x*2 : x*2+2])
				r := scale5(uint32(p>>10) & 31)
				g := scale5(uint32(p>>5) & 31)
				b := scale5(uint32(p) & 31)
				writeRGB(dst, x, channels, RGB{r, g, b})
			}
		case 24:
			for x := 0; x < width; x++ {
				b := row[x*3+0]
				g := row[x*3+1]
				r := row[x*3+2]
				writeRGB(dst, x, channels, RGB{r, g, b})
			}
		case 32:
			for x := 0; x < width; x++ {
				b := row[x*4+0]
				g := row[x*4+1]
				r := row[x*4+2]
				a := row[x*4+3]
				dst[x*4+0] = r
				dst[x*4+1] = g
				dst[x*4+2] = b
				dst[x*4+3] = a
			}
		default:
			return types.NewError(types.ErrInvalidBMP, fmt.Sprintf("unsupported bit depth %d", bitDepth))
		}
	}
	return nil
}

func lookup(pal []RGB, idx byte) RGB {
	if int(idx) < len(pal) {
		return pal[idx]
	}
	return RGB{}
}

// scale5 converts a 5-bit channel value to 8 bits by plain
// (non-rounding) division: v * 255 / 31.
func scale5(v uint32) byte {
	return byte((v * 255) / 31)
}

func writeRGB(dst []byte, x, channels int, c RGB) {
	dst[x*channels+0] = c.R
	dst[x*channels+1] = c.G
	dst[x*channels+2] = c.B
	if channels == 4 {
		dst[x*channels+3] = 255
	}
}
