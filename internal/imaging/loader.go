package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// ImageCache provides thread-safe caching of loaded images to avoid
// redundant disk reads. Decoded images are keyed by the exact path
// string they were loaded with and stay cached until evicted.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache, ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
// Supported formats are PNG, JPEG and GIF.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one image from the cache by its load path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// LoadColorDataset loads an image and converts it to a merged-RGB
// dataset with axes (Y, X, Channel), ready for color flood filling.
func LoadColorDataset(cache *ImageCache, path string) (*dataset.Dataset, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return dataset.FromImage(img)
}

// LoadGrayDataset loads an image and converts it to a scalar (Y, X)
// dataset, reducing color input to luminance.
func LoadGrayDataset(cache *ImageCache, path string) (*dataset.Dataset, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return dataset.FromGrayImage(img)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width and Height are the pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is detected from the file extension: "png", "jpeg",
	// "gif", or "unknown".
	Format string `json:"format"`

	// ColorDepth is the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates a transparency channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the on-disk size.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image (through the cache) and returns its
// dimensions, format, color depth, alpha presence and file size.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	ext := filepath.Ext(path)
	format := "unknown"
	switch ext {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains just the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns an image's dimensions without the metadata of
// LoadImageInfo.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
