package bmp

import "github.com/nktkas/windows-screenshot/pkg/types"

// decodeRLE8 implements the BI_RLE8 opcode stream: (count, value)
// repeats value count times; (0,0) end-of-line; (0,1) end-of-bitmap;
// (0,2) dx,dy delta; (0,N>=3) N literal indices padded to a 16-bit
// boundary. Out-of-bounds writes are dropped silently; the input
// cursor still advances. Result is then palette-expanded per
// orientation.
func decodeRLE8(data []byte, pixelOffset, width, height, colorsUsed int, isTopDown bool, out []byte) error {
	pal := readPalette(data, colorsUsed)
	idx := make([]byte, width*height)

	p := data[pixelOffset:]
	i := 0
	x, y := 0, 0

	putIdx := func(x, y int, v byte) {
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		idx[y*width+x] = v
	}

	for i+1 < len(p) {
		count := p[i]
		value := p[i+1]
		i += 2

		if count > 0 {
			for k := 0; k < int(count); k++ {
				putIdx(x, y, value)
				x++
			}
			continue
		}

		switch value {
		case 0: // end of line
			x = 0
			y++
		case 1: // end of bitmap
			return expandRLEIndices(idx, pal, width, height, isTopDown, out)
		case 2: // delta
			if i+1 >= len(p) {
				return types.NewError(types.ErrMalformedRLE, "truncated delta opcode")
			}
			dx := int(p[i])
			dy := int(p[i+1])
			i += 2
			x += dx
			y += dy
		default: // absolute mode: N literal indices
			n := int(value)
			for k := 0; k < n; k++ {
				if i >= len(p) {
					return types.NewError(types.ErrMalformedRLE, "truncated literal run")
				}
				putIdx(x, y, p[i])
				i++
				x++
			}
			if n%2 != 0 {
				i++ // pad byte
			}
		}
	}

	return expandRLEIndices(idx, pal, width, height, isTopDown, out)
}

func expandRLEIndices(idx []byte, pal []RGB, width, height int, isTopDown bool, out []byte) error {
	for y := 0; y < height; y++ {
		srcY := y
		if !isTopDown {
			srcY = height - 1 - y
		}
		srcRow := idx[srcY*width : srcY*width+width]
		dstRow := out[y*width*3 : y*width*3+width*3]
		for x := 0; x < width; x++ {
			writeRGB(dstRow, x, 3, lookup(pal, srcRow[x]))
		}
	}
	return nil
}

// decodeRLE4 implements the BI_RLE4 opcode stream. In encoded mode
// value packs two alternating 4-bit indices (high nibble for even j,
// low for odd j); in absolute mode each byte packs two pixels (high
// nibble first), word-aligned: if ceil(N/2) is odd one pad byte
// follows.
func decodeRLE4(data []byte, pixelOffset, width, height, colorsUsed int, isTopDown bool, out []byte) error {
	pal := readPalette(data, colorsUsed)
	idx := make([]byte, width*height)

	p := data[pixelOffset:]
	i := 0
	x, y := 0, 0

	putIdx := func(x, y int, v byte) {
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		idx[y*width+x] = v
	}

	for i+1 < len(p) {
		count := p[i]
		value := p[i+1]
		i += 2

		if count > 0 {
			hi := (value >> 4) & 0xF
			lo := value & 0xF
			for j := 0; j < int(count); j++ {
				if j%2 == 0 {
					putIdx(x, y, hi)
				} else {
					putIdx(x, y, lo)
				}
				x++
			}
			continue
		}

		switch value {
		case 0: // end of line
			x = 0
			y++
		case 1: // end of bitmap
			return expandRLEIndices(idx, pal, width, height, isTopDown, out)
		case 2: // delta
			if i+1 >= len(p) {
				return types.NewError(types.ErrMalformedRLE, "truncated delta opcode")
			}
			dx := int(p[i])
			dy := int(p[i+1])
			i += 2
			x += dx
			y += dy
		default: // absolute mode: N literal 4-bit indices, two per byte
			n := int(value)
			bytesNeeded := (n + 1) / 2
			for j := 0; j < n; j++ {
				byteIdx := i + j/2
				if byteIdx >= len(p) {
					return types.NewError(types.ErrMalformedRLE, "truncated literal run")
				}
				b := p[byteIdx]
				var v byte
				if j%2 == 0 {
					v = (b >> 4) & 0xF
				} else {
					v = b & 0xF
				}
				putIdx(x, y, v)
				x++
			}
			i += bytesNeeded
			if bytesNeeded%2 != 0 {
				i++ // pad byte
			}
		}
	}

	return expandRLEIndices(idx, pal, width, height, isTopDown, out)
}
