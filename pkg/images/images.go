// Package images probes the natural dimensions of replaced content.
package images

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// configCache caches decoded image headers keyed by path.
type configCache struct {
	cache map[string]image.Config
	mu    sync.RWMutex
}

var globalCache = &configCache{
	cache: make(map[string]image.Config),
}

// NaturalSize returns the pixel dimensions of the image at path. Only the
// header is decoded; results are cached per path.
func NaturalSize(path string) (width, height int, err error) {
	globalCache.mu.RLock()
	if cfg, ok := globalCache.cache[path]; ok {
		globalCache.mu.RUnlock()
		return cfg.Width, cfg.Height, nil
	}
	globalCache.mu.RUnlock()

	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}

	globalCache.mu.Lock()
	globalCache.cache[path] = cfg
	globalCache.mu.Unlock()

	return cfg.Width, cfg.Height, nil
}
