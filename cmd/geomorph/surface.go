package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// surface is a geomorph.Surface drawing into an offscreen ebiten image,
// which the game copies to the screen every frame.
type surface struct {
	buffer *ebiten.Image
	bg     color.Color

	// 1x1 white, scaled & tinted for rect fills
	pixel *ebiten.Image

	// form images converted to ebiten, by source image
	images map[image.Image]*ebiten.Image
}

func newSurface(w, h int, bg color.Color) *surface {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &surface{
		buffer: ebiten.NewImage(w, h),
		bg:     bg,
		pixel:  pixel,
		images: map[image.Image]*ebiten.Image{},
	}
}

// resize drops the buffer for a new one; the caller is expected to redraw.
func (s *surface) resize(w, h int) {
	s.buffer.Deallocate()
	s.buffer = ebiten.NewImage(w, h)
}

func (s *surface) image(im image.Image) *ebiten.Image {
	e, ok := s.images[im]
	if !ok {
		e = ebiten.NewImageFromImage(im)
		s.images[im] = e
	}
	return e
}

func (s *surface) Clear() {
	s.buffer.Fill(s.bg)
}

func (s *surface) DrawImage(im image.Image, m gg.Matrix) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(m)
	op.Filter = ebiten.FilterLinear
	s.buffer.DrawImage(s.image(im), op)
}

func (s *surface) FillRect(c color.Color, w, h float64, m gg.Matrix) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Concat(geoM(m))
	op.ColorScale.ScaleWithColor(c)
	s.buffer.DrawImage(s.pixel, op)
}

// geoM converts a gg affine matrix to ebiten's.
func geoM(m gg.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.XX)
	g.SetElement(0, 1, m.XY)
	g.SetElement(0, 2, m.X0)
	g.SetElement(1, 0, m.YX)
	g.SetElement(1, 1, m.YY)
	g.SetElement(1, 2, m.Y0)
	return g
}
