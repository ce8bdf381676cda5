package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
	"time"
)

// fileVersion identifies the on-disk contents a cached image was decoded from.
type fileVersion struct {
	size    int64
	modTime time.Time
}

func (v fileVersion) matches(info os.FileInfo) bool {
	return v.size == info.Size() && v.modTime.Equal(info.ModTime())
}

type cachedImage struct {
	img     image.Image
	version fileVersion
}

// ImageCache holds decoded image files keyed by path.
//
// Every Load stats the file; an entry is reused only while the file keeps the
// size and modification time it had when decoded, so a rewritten file is
// decoded again. Safe for concurrent use.
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]cachedImage
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{entries: make(map[string]cachedImage)}
}

// Load returns the decoded image at path, decoding it again if the file
// changed since it was cached. Supported formats are PNG, JPEG and GIF.
func (c *ImageCache) Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.Evict(path)
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.version.matches(info) {
		return entry.img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		c.Evict(path)
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = cachedImage{
		img:     img,
		version: fileVersion{size: info.Size(), modTime: info.ModTime()},
	}
	c.mu.Unlock()

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// LoadRaster loads the image at path through the cache and rasterizes it,
// optionally restricted to region.
func (c *ImageCache) LoadRaster(path string, region *Region) (*Raster, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return Rasterize(img, region)
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached image and reports how many were dropped.
func (c *ImageCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cachedImage)
	return n
}

// Evict drops the image cached for path and reports whether one was cached.
func (c *ImageCache) Evict(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	delete(c.entries, path)
	return ok
}
