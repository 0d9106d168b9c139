package bmp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nktkas/windows-screenshot/pkg/types"
)

func TestTemplateCache_HitReturnsIndependentBuffer(t *testing.T) {
	cache := NewTemplateCache(4)

	first := BuildCached(cache, 4, 4, 24, types.PaletteHalftone)
	first.Pixels()[0] = 0xFF

	second := BuildCached(cache, 4, 4, 24, types.PaletteHalftone)
	require.NotSame(t, first, second)
	require.Equal(t, byte(0), second.Pixels()[0], "mutating one Structure must not affect the next Get")
	require.Equal(t, first.GdiInfo(), second.GdiInfo())
}

func TestTemplateCache_DisabledSizeAlwaysMisses(t *testing.T) {
	cache := NewTemplateCache(0)
	require.Nil(t, cache.Get(4, 4, 24, types.PaletteHalftone))

	s := BuildCached(cache, 4, 4, 24, types.PaletteHalftone)
	require.NotNil(t, s)
	require.Nil(t, cache.Get(4, 4, 24, types.PaletteHalftone))
}

func TestTemplateCache_Clear(t *testing.T) {
	cache := NewTemplateCache(4)
	BuildCached(cache, 4, 4, 24, types.PaletteHalftone)
	cache.Clear()
	require.Nil(t, cache.Get(4, 4, 24, types.PaletteHalftone))
}
