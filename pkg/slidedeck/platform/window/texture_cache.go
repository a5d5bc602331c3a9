package window

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// cachedTexture is a texture with its pixel size.
type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache keeps rendered text and chart textures, evicting the least
// recently used one when full. Evicted textures are destroyed.
type TextureCache struct {
	entries map[string]cachedTexture
	order   []string // least recently used first
	maxSize int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		entries: make(map[string]cachedTexture, maxSize),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *TextureCache) Get(key string) (cachedTexture, bool) {
	entry, ok := c.entries[key]
	if ok {
		c.touch(key)
	}
	return entry, ok
}

func (c *TextureCache) Set(key string, texture *sdl.Texture, w, h int32) {
	if old, ok := c.entries[key]; ok {
		if old.texture != nil && old.texture != texture {
			old.texture.Destroy()
		}
		c.entries[key] = cachedTexture{texture: texture, w: w, h: h}
		c.touch(key)
		return
	}

	for len(c.order) >= c.maxSize {
		c.evict(c.order[0])
	}

	c.entries[key] = cachedTexture{texture: texture, w: w, h: h}
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = key
			return
		}
	}
}

func (c *TextureCache) evict(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if entry, ok := c.entries[key]; ok {
		if entry.texture != nil {
			entry.texture.Destroy()
		}
		delete(c.entries, key)
	}
}

func (c *TextureCache) Destroy() {
	for _, entry := range c.entries {
		if entry.texture != nil {
			entry.texture.Destroy()
		}
	}
	c.entries = make(map[string]cachedTexture, c.maxSize)
	c.order = c.order[:0]
}
