package screenshot

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nktkas/windows-screenshot/internal/bmp"
)

func TestBmpToRGB_RoundTripsBuiltStructure(t *testing.T) {
	s := bmp.Build(4, 3, 24, 0)
	pixels := s.Pixels()
	for i := range pixels {
		pixels[i] = byte(i)
	}

	img, err := BmpToRGB(s.Buf)
	require.NoError(t, err)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 3, img.Height)
	require.Equal(t, 3, img.Channels)
	require.Len(t, img.Data, 4*3*3)
}

func TestOptions_ConfigureEngineConfig(t *testing.T) {
	cfg := &engineConfig{}
	log := zap.NewNop()

	WithLogger(log)(cfg)
	WithTemplateCacheSize(16)(cfg)

	require.Same(t, log, cfg.logger)
	require.Equal(t, 16, cfg.templateCache)
}
