package bmp

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildHeader allocates a full BMP buffer: file header (14) + info
// header (40+extraHeaderBytes) + paletteBytes + pixelBytes, all
// zero-filled beyond what it writes itself. The caller fills the
// palette and pixel regions directly via the returned pixelOffset.
func buildHeader(width, height int32, bitDepth int, compression uint32, extraHeaderBytes, paletteBytes, pixelBytes int) (buf []byte, pixelOffset int) {
	infoSz := 40 + extraHeaderBytes
	pixelOffset = 14 + infoSz + paletteBytes
	buf = make([]byte, pixelOffset+pixelBytes)

	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:14], uint32(pixelOffset))

	ih := buf[14:]
	binary.LittleEndian.PutUint32(ih[0:4], uint32(infoSz))
	binary.LittleEndian.PutUint32(ih[4:8], uint32(width))
	binary.LittleEndian.PutUint32(ih[8:12], uint32(height))
	binary.LittleEndian.PutUint16(ih[12:14], 1)
	binary.LittleEndian.PutUint16(ih[14:16], uint16(bitDepth))
	binary.LittleEndian.PutUint32(ih[16:20], compression)

	return buf, pixelOffset
}

func TestDecode_24bitBottomUp(t *testing.T) {
	// 2x2 24-bit bottom-up, stride padded to 8 bytes.
	buf, pixelOffset := buildHeader(2, 2, 24, biRGB, 0, 0, 16)
	row0 := []byte{0, 0, 0, 1, 1, 1, 0, 0} // bottom row: B0G0R0 B1G1R1 + pad
	row1 := []byte{2, 2, 2, 3, 3, 3, 0, 0} // top row:    B2G2R2 B3G3R3 + pad
	copy(buf[pixelOffset:], row0)
	copy(buf[pixelOffset+8:], row1)

	img, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)
	require.Equal(t, 3, img.Channels)
	require.Equal(t,
		[]byte{2, 2, 2, 3, 3, 3, 0, 0, 0, 1, 1, 1},
		img.Data,
	)
}

func TestDecode_1bitAlternating(t *testing.T) {
	buf, pixelOffset := buildHeader(8, 1, 1, biRGB, 0, 8, 4)
	binary.LittleEndian.PutUint32(buf[14+32:14+36], 2)
	binary.LittleEndian.PutUint32(buf[14+36:14+40], 2)
	pal := buf[14+40:]
	copy(pal[0:4], []byte{0, 0, 0, 0})       // index 0: black
	copy(pal[4:8], []byte{255, 255, 255, 0}) // index 1: white
	buf[pixelOffset] = 0xA5                  // 10100101

	img, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t,
		[]byte{
			255, 255, 255, 0, 0, 0, 255, 255, 255, 0, 0, 0,
			0, 0, 0, 255, 255, 255, 0, 0, 0, 255, 255, 255,
		},
		img.Data,
	)
}

func TestDecode_BitfieldsWhite(t *testing.T) {
	buf, pixelOffset := buildHeader(1, 1, 16, biBitfields, 12, 0, 2)
	binary.LittleEndian.PutUint32(buf[14+40:14+44], 0x7C00)
	binary.LittleEndian.PutUint32(buf[14+44:14+48], 0x03E0)
	binary.LittleEndian.PutUint32(buf[14+48:14+52], 0x001F)
	binary.LittleEndian.PutUint16(buf[pixelOffset:pixelOffset+2], 0x7FFF)

	img, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{255, 255, 255}, img.Data)
}

func TestDecode_RLE8(t *testing.T) {
	stream := []byte{0x03, 0x41, 0x00, 0x00, 0x02, 0x42, 0x00, 0x01}
	buf, pixelOffset := buildHeader(5, -2, 8, biRLE8, 0, 0x43*4, len(stream)) // top-down
	binary.LittleEndian.PutUint32(buf[14+32:14+36], 0x43)
	binary.LittleEndian.PutUint32(buf[14+36:14+40], 0x43)
	pal := buf[14+40:]
	pal[0x41*4+0], pal[0x41*4+1], pal[0x41*4+2] = 30, 20, 10
	pal[0x42*4+0], pal[0x42*4+1], pal[0x42*4+2] = 60, 50, 40
	copy(buf[pixelOffset:], stream)

	img, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 5, img.Width)
	require.Equal(t, 2, img.Height)
	// (03,41) runs index 0x41 three times; (00,00) is end-of-line,
	// advancing to row 1 and resetting x; (02,42) then runs index 0x42
	// twice at the start of row 1; (00,01) ends the bitmap. Row 0's
	// trailing two pixels and row 1's trailing three stay at index 0.
	require.Equal(t,
		[]byte{
			10, 20, 30, 10, 20, 30, 10, 20, 30, 0, 0, 0, 0, 0, 0,
			40, 50, 60, 40, 50, 60, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		img.Data,
	)
}

func TestDecode_RejectsBadSignature(t *testing.T) {
	buf := make([]byte, 54)
	_, err := Decode(buf)
	require.Error(t, err)
}
