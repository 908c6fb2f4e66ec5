package geomorph

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Canvas is a raster Surface backed by a gg context.
type Canvas struct {
	dc *gg.Context
	bg color.Color
}

// NewCanvas returns a w x h canvas that clears to `bg`.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h), bg: bg}
}

// Clear fills the whole canvas with the background colour.
func (c *Canvas) Clear() {
	c.dc.Identity()
	c.dc.SetColor(c.bg)
	c.dc.Clear()
}

// DrawImage composites `im` through the affine transform `m`.
func (c *Canvas) DrawImage(im image.Image, m gg.Matrix) {
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	s2d := f64.Aff3{m.XX, m.XY, m.X0, m.YX, m.YY, m.Y0}
	draw.BiLinear.Transform(dst, s2d, im, im.Bounds(), draw.Over, nil)
}

// FillRect fills the parallelogram a w x h rect becomes under `m`.
func (c *Canvas) FillRect(col color.Color, w, h float64, m gg.Matrix) {
	c.dc.Identity()
	c.dc.NewSubPath()
	c.dc.MoveTo(m.TransformPoint(0, 0))
	c.dc.LineTo(m.TransformPoint(w, 0))
	c.dc.LineTo(m.TransformPoint(w, h))
	c.dc.LineTo(m.TransformPoint(0, h))
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

// Image is the current raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to disk.
func (c *Canvas) SavePNG(fname string) error {
	return c.dc.SavePNG(fname)
}
