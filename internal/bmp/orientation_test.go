package bmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDecode_OrientationInvariant confirms a bottom-up and a top-down
// encoding of the same logical image decode to identical packed RGB
// data.
func TestDecode_OrientationInvariant(t *testing.T) {
	width, height := int32(3), int32(2)
	pixels := [][]byte{
		{10, 20, 30, 40, 50, 60, 70, 80, 90, 0, 0, 0}, // row A, padded to 12
		{11, 21, 31, 41, 51, 61, 71, 81, 91, 0, 0, 0}, // row B, padded to 12
	}

	bottomUp, _ := buildHeader(width, height, 24, biRGB, 0, 0, 24)
	copy(bottomUp[14+40:], pixels[0]) // bottom-up: first row in memory is the bottom
	copy(bottomUp[14+40+12:], pixels[1])

	topDown, _ := buildHeader(width, -height, 24, biRGB, 0, 0, 24)
	copy(topDown[14+40:], pixels[1]) // top-down: first row in memory is the top
	copy(topDown[14+40+12:], pixels[0])

	imgBottomUp, err := Decode(bottomUp)
	require.NoError(t, err)
	imgTopDown, err := Decode(topDown)
	require.NoError(t, err)

	require.Equal(t, imgBottomUp.Data, imgTopDown.Data)
}
