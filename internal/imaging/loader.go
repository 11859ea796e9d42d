package imaging

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache provides thread-safe caching of decoded photos so a batch scan
// does not re-read and re-decode the same file.
//
// Cached images stay in memory until Evict or Clear; a batch over many
// large photos should Clear between batches.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty photo cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the decoded photo at path, reading it from disk on the
// first call and from the cache afterwards. Camera EXIF orientation is
// applied during decode, so a portrait shot comes back upright.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load photo %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one photo from the cache.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached photo.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// DecodeBytes decodes a photo supplied as raw bytes (camera capture or
// upload), applying EXIF orientation. Format support is whatever the
// image decoders registered by the imaging library provide.
func DecodeBytes(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}
	return img, nil
}
