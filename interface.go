package geomorph

import (
	"context"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Surface is something a Mapper can draw on
type Surface interface {
	// Clear wipes the whole surface
	Clear()

	// DrawImage draws `im` with its top left corner at (0,0) under `m`
	DrawImage(im image.Image, m gg.Matrix)

	// FillRect fills a w x h rectangle at (0,0) under `m`
	FillRect(c color.Color, w, h float64, m gg.Matrix)
}

// Loader fetches strip images
type Loader interface {
	// Load returns the decoded image at `path`. It may block; the Mapper
	// never calls it on its own goroutine.
	Load(ctx context.Context, path string) (image.Image, error)
}

// Palette offers ready forms to the user for selection
type Palette interface {
	// AddForms is called once per tileset, when all its forms are ready
	AddForms(forms []*Form)
}

// Listener hears about tileset load results
type Listener interface {
	// TilesetReady is called at most once per tileset
	TilesetReady(name string)

	// TilesetFailed is called once for each subset that fails to load
	TilesetFailed(name string, subset Subset, err error)
}
