package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/geomorph"
)

const zoomStep = 1.1

// Game drives a mapper from ebiten: keys move the cursor, the wheel zooms,
// right-drag scrolls & clicking the palette places forms.
type Game struct {
	m       *geomorph.Mapper
	surface *surface
	palette *palette

	w, h         int
	dragging     bool
	lastX, lastY int

	status string
}

func NewGame(cfg *geomorph.Config, m *geomorph.Mapper, s *surface, p *palette) *Game {
	g := &Game{m: m, surface: s, palette: p, w: cfg.Width, h: cfg.Height}
	m.Palette = p
	m.Listener = g
	return g
}

func (g *Game) TilesetReady(name string) {
	g.status = fmt.Sprintf("%s ready", name)
}

func (g *Game) TilesetFailed(name string, subset geomorph.Subset, err error) {
	g.status = fmt.Sprintf("%s (%s) failed: %v", name, subset, err)
}

func (g *Game) Update() error {
	g.m.Pump()

	for _, code := range pressedCodes() {
		err := g.m.HandleKey(code)
		if err != nil && !errors.Is(err, geomorph.ErrUnknownKey) {
			return err
		}
	}

	if _, dy := ebiten.Wheel(); dy > 0 {
		g.m.Zoom(zoomStep)
	} else if dy < 0 {
		g.m.Zoom(1 / zoomStep)
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if f, ok := g.palette.at(x, y, g.h); ok {
			if err := g.m.Select(f); err != nil {
				logrus.WithError(err).WithField("form", f.Ref()).Warn("select failed")
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging && (x != g.lastX || y != g.lastY) {
			g.m.Scroll(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.buffer, nil)
	g.palette.draw(screen, g.surface)

	msg := fmt.Sprintf("cursor %s  tiles %d  zoom %.2f", g.m.Cursor(), g.m.Tiles().Len(), g.m.View().Zoom)
	if g.m.Loading() {
		msg += "  loading..."
	} else if g.status != "" {
		msg += "  " + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.surface.resize(g.w, g.h)
		g.m.Resize(g.w, g.h)
	}
	return g.w, g.h
}
