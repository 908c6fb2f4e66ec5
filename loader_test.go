package geomorph

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePng(t *testing.T, fname string, n, tileSize int) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(fname), 0755))
	f, err := os.Create(fname)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, testStrip(n, tileSize)))
}

func TestFileLoaderLoads(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "overhead", "crypt.png"), 3, 10)

	l, err := NewFileLoader(dir, DefaultCacheBytes)
	require.Nil(t, err)
	defer l.Close()

	im, err := l.Load(context.Background(), filepath.Join("overhead", "crypt.png"))
	require.Nil(t, err)
	assert.Equal(t, 30, im.Bounds().Dx())
	assert.Equal(t, 10, im.Bounds().Dy())
}

func TestFileLoaderCaches(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "crypt.png")
	writePng(t, fname, 1, 10)

	l, err := NewFileLoader("", DefaultCacheBytes)
	require.Nil(t, err)
	defer l.Close()

	first, err := l.Load(context.Background(), fname)
	require.Nil(t, err)

	require.Nil(t, os.Remove(fname))

	again, err := l.Load(context.Background(), fname)
	require.Nil(t, err)
	assert.Equal(t, first, again)
}

func TestFileLoaderMissing(t *testing.T) {
	l, err := NewFileLoader(t.TempDir(), DefaultCacheBytes)
	require.Nil(t, err)
	defer l.Close()

	_, err = l.Load(context.Background(), "nope.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoaderCancelled(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "crypt.png"), 1, 10)

	l, err := NewFileLoader(dir, DefaultCacheBytes)
	require.Nil(t, err)
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Load(ctx, "crypt.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStripPath(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, filepath.Join("static", "tilesets", "overhead", "crypt.png"), stripPath(cfg, "crypt", Overhead))
	assert.Equal(t, filepath.Join("static", "tilesets", "vertical", "crypt.png"), stripPath(cfg, "crypt", Vertical))
}
