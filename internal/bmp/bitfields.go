package bmp

import (
	"encoding/binary"
)

// defaultMasks16 and defaultMasks32 are the masks used when the header supplies no color
// masks of its own (all zero). Matches the Windows default 5-5-5 /
// 8-8-8-8 fallback for 16/32-bit BITFIELDS images.
var (
	defaultMasks16 = [3]uint32{0x7C00, 0x03E0, 0x001F}
	defaultMasks32 = [4]uint32{0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000}
)

// decodeBitfields implements BI_BITFIELDS for 16 and 32-bit sources.
// R/G/B masks sit at the fixed offsets 14+40, 14+44, 14+48 regardless
// of the declared info-header size; the optional alpha mask at 14+52
// is read only when the header declares itself large enough to carry
// it. Each channel is extracted by shifting to its lowest set bit,
// then scaled to [0,255] with ceiling rounding: scale = 255 / ((1<<bits)-1).
func decodeBitfields(data []byte, pixelOffset, width, height, bitDepth int, infoHeaderSz uint32, isTopDown bool, channels int, out []byte) error {
	const rgbMaskOff = fileHeaderSize + 40
	const alphaMaskOff = fileHeaderSize + 52

	nMasks := 3
	if bitDepth == 32 && infoHeaderSz >= 56 {
		nMasks = 4
	}

	masks := make([]uint32, nMasks)
	allZero := true
	for i := 0; i < 3; i++ {
		off := rgbMaskOff + i*4
		if off+4 <= len(data) {
			masks[i] = binary.LittleEndian.Uint32(data[off : off+4])
			if masks[i] != 0 {
				allZero = false
			}
		}
	}
	if nMasks == 4 {
		if alphaMaskOff+4 <= len(data) {
			masks[3] = binary.LittleEndian.Uint32(data[alphaMaskOff : alphaMaskOff+4])
		}
	}
	if allZero {
		if bitDepth == 16 {
			copy(masks, defaultMasks16[:])
		} else {
			copy(masks, defaultMasks32[:])
		}
	}

	extractors := make([]func(uint32) byte, nMasks)
	for i, m := range masks {
		extractors[i] = makeFieldExtractor(m)
	}

	stride := Stride(int32(width), bitDepth)

	for y := 0; y < height; y++ {
		srcY := y
		if !isTopDown {
			srcY = height - 1 - y
		}
		row := data[pixelOffset+srcY*stride:]
		dst := out[y*width*channels:]

		for x := 0; x < width; x++ {
			var raw uint32
			if bitDepth == 16 {
				raw = uint32(binary.LittleEndian.Uint16(row[x*2 : x*2+2]))
			} else {
				raw = binary.LittleEndian.Uint32(row[x*4 : x*4+4])
			}

			r := extractors[0](raw)
			g := extractors[1](raw)
			b := extractors[2](raw)
			dst[x*channels+0] = r
			dst[x*channels+1] = g
			dst[x*channels+2] = b
			if channels == 4 {
				if nMasks == 4 && masks[3] != 0 {
					dst[x*channels+3] = extractors[3](raw)
				} else {
					dst[x*channels+3] = 255
				}
			}
		}
	}

	return nil
}

// makeFieldExtractor builds a closure that pulls the masked bits out
// of a raw pixel, shifts them down to the lowest set bit, and scales
// them to [0,255] with ceiling rounding.
func makeFieldExtractor(mask uint32) func(uint32) byte {
	if mask == 0 {
		return func(uint32) byte { return 0 }
	}
	shift := 0
	for mask&(1<<uint(shift)) == 0 {
		shift++
	}
	bits := 0
	for m := mask >> uint(shift); m != 0; m >>= 1 {
		bits++
	}
	maxVal := uint32(1<<uint(bits)) - 1

	return func(raw uint32) byte {
		v := (raw & mask) >> uint(shift)
		scaled := (v*255 + maxVal - 1) / maxVal
		if scaled > 255 {
			scaled = 255
		}
		return byte(scaled)
	}
}
