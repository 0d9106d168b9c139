package bmp

// RGB is a palette entry prior to BGRA encoding.
type RGB struct {
	R, G, B byte
}

// Mono1 is the 1-bit monochrome palette: black, then white.
var Mono1 = [2]RGB{
	{0, 0, 0},
	{255, 255, 255},
}

// VGA16 is the standard 16-color VGA palette in the order the BMP
// format expects: black, dark-red, dark-green, dark-yellow, dark-blue,
// dark-magenta, dark-cyan, light-gray, dark-gray, red, green, yellow,
// blue, magenta, cyan, white.
var VGA16 = [16]RGB{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// Grayscale256 is the 8-bit i -> (i,i,i) grayscale ramp.
var Grayscale256 = buildGrayscale256()

func buildGrayscale256() [256]RGB {
	var p [256]RGB
	for i := 0; i < 256; i++ {
		p[i] = RGB{byte(i), byte(i), byte(i)}
	}
	return p
}

// halftoneCube holds the six component values the 6x6x6 color cube
// iterates over.
var halftoneCube = [6]byte{0, 51, 102, 153, 204, 255}

// halftoneSystemColors are the 20 standard/system colors occupying
// indices 0-19 of the Windows "halftone" palette.
var halftoneSystemColors = [20]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{192, 220, 192}, {166, 202, 240}, {255, 251, 240}, {160, 160, 164},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Halftone256 is the 8-bit "halftone" palette: 20 system colors, a
// 6x6x6 color cube (r outermost, g, b innermost) at indices 20-235,
// then a 20-entry grayscale ramp at indices 236-255.
var Halftone256 = buildHalftone256()

func buildHalftone256() [256]RGB {
	var p [256]RGB
	copy(p[0:20], halftoneSystemColors[:])

	idx := 20
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = RGB{halftoneCube[r], halftoneCube[g], halftoneCube[b]}
				idx++
			}
		}
	}

	for i := 0; i < 20; i++ {
		v := byte((i*255 + 9) / 19) // round(i * 255 / 19)
		p[236+i] = RGB{v, v, v}
	}
	return p
}

// encodeBGRA appends entries as 4-byte BGRA quads with alpha 0: each
// entry's true (R,G,B) is byte-swapped into (B,G,R,0) on the wire.
func encodeBGRA(dst []byte, entries []RGB) []byte {
	for _, e := range entries {
		dst = append(dst, e.B, e.G, e.R, 0)
	}
	return dst
}

// encodeVGA16 appends the 4-bit palette without the R/B swap
// encodeBGRA performs: each listed (component0, component1,
// component2) triple is written straight into the B/G/R wire slots
// without swapping, so a palette entry conceptually "dark-red"
// (128,0,0) is written B=128,G=0,R=0,A=0 and decodes back as blue,
// not red. See DESIGN.md for why this is intentional.
func encodeVGA16(dst []byte, entries []RGB) []byte {
	for _, e := range entries {
		dst = append(dst, e.R, e.G, e.B, 0)
	}
	return dst
}
