package geomorph

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Form is a single tile image cut from a tileset strip.
type Form struct {
	ref   FormRef
	img   *image.RGBA
	thumb image.Image
	ready bool
}

// newForm copies tile number `offset` out of `strip`.
func newForm(ref FormRef, strip image.Image, tileSize int) *Form {
	b := strip.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	draw.Draw(
		img,
		img.Bounds(),
		strip,
		image.Pt(b.Min.X+ref.Offset*tileSize, b.Min.Y),
		draw.Src,
	)
	return &Form{ref: ref, img: img}
}

// sliceStrip cuts a strip into width / tileSize forms, in offset order.
func sliceStrip(tileset string, subset Subset, strip image.Image, tileSize int) []*Form {
	n := strip.Bounds().Dx() / tileSize
	forms := make([]*Form, 0, n)
	for i := 0; i < n; i++ {
		forms = append(forms, newForm(FormRef{Tileset: tileset, Subset: subset, Offset: i}, strip, tileSize))
	}
	return forms
}

// makeThumbnail scales a form image down to fit size x size for the palette.
func makeThumbnail(im image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, im, resize.Lanczos3)
}

// Ref returns the value used to place this form on a map.
func (f *Form) Ref() FormRef {
	return f.ref
}

// Image is the full size tile.
func (f *Form) Image() image.Image {
	return f.img
}

// Thumbnail is the palette image, nil until prepared.
func (f *Form) Thumbnail() image.Image {
	return f.thumb
}
