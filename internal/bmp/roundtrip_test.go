package bmp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nktkas/windows-screenshot/pkg/types"
)

// TestRoundTrip builds a BMP the same way the capture engine would,
// fills its pixel region directly, and confirms the decoder recovers
// the same geometry and accepts the buffer without error.
func TestRoundTrip(t *testing.T) {
	for _, bitDepth := range []int{1, 4, 8, 24, 32} {
		s := Build(4, 3, bitDepth, types.PaletteHalftone)

		pixels := s.Pixels()
		for i := range pixels {
			pixels[i] = byte(i % 256)
		}

		img, err := Decode(s.Buf)
		require.NoError(t, err, "bitDepth=%d", bitDepth)
		require.Equal(t, 4, img.Width)
		require.Equal(t, 3, img.Height)

		wantChannels := 3
		if bitDepth == 32 {
			wantChannels = 4
		}
		require.Equal(t, wantChannels, img.Channels)
		require.Len(t, img.Data, img.Width*img.Height*img.Channels)
	}
}
