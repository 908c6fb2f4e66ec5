package geomorph

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultCacheBytes is roughly how many bytes of decoded strips a FileLoader
// keeps around.
const DefaultCacheBytes = 256 << 20

// FileLoader reads strip images from disk, keeping decoded images in a cache
// so repeat requests (other mappers, reloads) don't decode again.
type FileLoader struct {
	// Root is prefixed to relative paths (if set)
	Root string

	cache *ristretto.Cache[string, image.Image]
}

// NewFileLoader returns a loader caching up to maxCost bytes of pixels.
func NewFileLoader(root string, maxCost int64) (*FileLoader, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, image.Image]{
		NumCounters: 1000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &FileLoader{Root: root, cache: cache}, nil
}

// Load decodes the png (or gif, jpeg) at `path`.
func (l *FileLoader) Load(ctx context.Context, path string) (image.Image, error) {
	full := l.resolve(path)
	if im, ok := l.cache.Get(full); ok {
		return im, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	im, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", full, err)
	}

	b := im.Bounds()
	l.cache.Set(full, im, int64(b.Dx()*b.Dy()*4))
	l.cache.Wait()
	return im, nil
}

// Close releases the cache.
func (l *FileLoader) Close() {
	l.cache.Close()
}

func (l *FileLoader) resolve(path string) string {
	if l.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// stripPath is where a tileset's strip for `subset` lives.
func stripPath(cfg *Config, name string, subset Subset) string {
	base := cfg.OverheadPath
	if subset == Vertical {
		base = cfg.VerticalPath
	}
	return filepath.Join(base, name+".png")
}
