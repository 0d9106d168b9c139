package bmp

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nktkas/windows-screenshot/pkg/types"
)

// templateKey identifies a header template by the parameters that
// fully determine its layout.
type templateKey struct {
	width    int32
	height   int32
	bitDepth int
	palette  types.PaletteType
}

// TemplateCache holds pre-built header/palette templates keyed by
// (width, height, bitDepth, palette) so repeated captures at the same
// geometry skip header reconstruction. Entries are plain byte buffers
// with no native handles, so eviction never needs explicit release;
// Close still clears the cache to drop the references promptly.
type TemplateCache struct {
	cache *lru.Cache[templateKey, *Structure]
}

// NewTemplateCache creates a cache bounded to size entries. size <= 0
// disables caching: Get always misses and Put is a no-op.
func NewTemplateCache(size int) *TemplateCache {
	if size <= 0 {
		return &TemplateCache{}
	}
	c, err := lru.New[templateKey, *Structure](size)
	if err != nil {
		return &TemplateCache{}
	}
	return &TemplateCache{cache: c}
}

// Get returns a fresh Structure cloned from the cached template for
// (width, height, bitDepth, palette), or nil on a miss. The returned
// Structure owns its own backing buffer so the caller can fill pixel
// data without mutating the cached template.
func (c *TemplateCache) Get(width, height int32, bitDepth int, palette types.PaletteType) *Structure {
	if c.cache == nil {
		return nil
	}
	tmpl, ok := c.cache.Get(templateKey{width, height, bitDepth, palette})
	if !ok {
		return nil
	}
	buf := make([]byte, len(tmpl.Buf))
	copy(buf, tmpl.Buf)
	return &Structure{
		Buf:         buf,
		Width:       tmpl.Width,
		Height:      tmpl.Height,
		pixelOffset: tmpl.pixelOffset,
		stride:      tmpl.stride,
	}
}

// Put stores s as the template for its (width, height, bitDepth,
// palette) key.
func (c *TemplateCache) Put(bitDepth int, palette types.PaletteType, s *Structure) {
	if c.cache == nil {
		return
	}
	c.cache.Add(templateKey{s.Width, s.Height, bitDepth, palette}, s)
}

// BuildCached returns a Structure for the given geometry, reusing a
// cached template's header/palette bytes when present and populating
// the cache on a miss.
func BuildCached(cache *TemplateCache, width, height int32, bitDepth int, palette types.PaletteType) *Structure {
	if cache != nil {
		if s := cache.Get(width, height, bitDepth, palette); s != nil {
			return s
		}
	}
	s := Build(width, height, bitDepth, palette)
	if cache != nil {
		cache.Put(bitDepth, palette, s)
		if c := cache.Get(width, height, bitDepth, palette); c != nil {
			return c
		}
	}
	return s
}

// Clear empties the cache. Called from Engine.Close.
func (c *TemplateCache) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}
