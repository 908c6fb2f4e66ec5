package geomorph

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(c color.Color, size int) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(im, im.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return im
}

func rgbaAt(im image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
}

func TestCanvasFillRectFollowsFace(t *testing.T) {
	c := NewCanvas(600, 600, color.Transparent)
	c.Clear()

	red := color.RGBA{0xff, 0, 0, 0xff}
	c.FillRect(red, side, side, unitView().Project(side, RoleLeft, 0, 0, 0))

	// left face spans y 75..375 at x 150
	assert.Equal(t, red, rgbaAt(c.Image(), 150, 250))
	assert.Equal(t, color.RGBA{}, rgbaAt(c.Image(), 150, 30))
	assert.Equal(t, color.RGBA{}, rgbaAt(c.Image(), 450, 250))
}

func TestCanvasDrawImageFollowsFace(t *testing.T) {
	c := NewCanvas(600, 600, color.Transparent)
	c.Clear()

	green := color.RGBA{0, 0xff, 0, 0xff}
	c.DrawImage(solid(green, side), unitView().Project(side, RoleRight, 0, 0, 0))

	// right face spans y 75..375 at x 450
	assert.Equal(t, green, rgbaAt(c.Image(), 450, 225))
	assert.Equal(t, color.RGBA{}, rgbaAt(c.Image(), 150, 225))
	assert.Equal(t, color.RGBA{}, rgbaAt(c.Image(), 450, 30))
}

func TestCanvasClear(t *testing.T) {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	c := NewCanvas(20, 20, white)

	c.FillRect(color.Black, 20, 20, unitView().Base())
	c.Clear()

	assert.Equal(t, white, rgbaAt(c.Image(), 10, 10))
}
