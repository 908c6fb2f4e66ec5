package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/voidshard/geomorph"
)

const palettePad = 4

// palette is the strip of form thumbnails along the bottom of the window.
// Clicking a thumbnail places that form at the cursor.
type palette struct {
	size  int
	forms []*geomorph.Form
}

func (p *palette) AddForms(forms []*geomorph.Form) {
	p.forms = append(p.forms, forms...)
}

// height is the strip height in px.
func (p *palette) height() int {
	return p.size + 2*palettePad
}

func (p *palette) cell(i, screenH int) image.Point {
	return image.Pt(palettePad+i*(p.size+palettePad), screenH-p.size-palettePad)
}

// at returns the form whose thumbnail covers (x,y), if any.
func (p *palette) at(x, y, screenH int) (*geomorph.Form, bool) {
	for i, f := range p.forms {
		c := p.cell(i, screenH)
		if image.Pt(x, y).In(image.Rectangle{Min: c, Max: c.Add(image.Pt(p.size, p.size))}) {
			return f, true
		}
	}
	return nil, false
}

func (p *palette) draw(screen *ebiten.Image, s *surface) {
	h := screen.Bounds().Dy()
	for i, f := range p.forms {
		thumb := f.Thumbnail()
		if thumb == nil {
			continue
		}
		c := p.cell(i, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.X), float64(c.Y))
		screen.DrawImage(s.image(thumb), op)
	}
}
