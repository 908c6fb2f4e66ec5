package geomorph

import (
	"math"

	"github.com/fogleman/gg"
)

// View is the global viewport. It is applied under every tile drawn in a
// frame.
type View struct {
	Zoom             float64
	OriginX, OriginY float64
	ScrollX, ScrollY float64
}

// Resize recentres the origin for a surface of w x h pixels.
func (v *View) Resize(w, h, tileSize int) {
	v.OriginX = float64(w)/2 - float64(tileSize)
	v.OriginY = float64(h) / 2
}

// Base scales by zoom, then translates by origin + scroll.
func (v View) Base() gg.Matrix {
	return gg.Identity().
		Translate(v.OriginX+v.ScrollX, v.OriginY+v.ScrollY).
		Scale(v.Zoom, v.Zoom)
}

// Project returns the transform that maps a tileSize x tileSize square at
// (0,0) onto the given face of cube (x,y,z).
//
// gg.Matrix methods compose like canvas transform calls: each one applies
// before everything already in the matrix.
func (v View) Project(tileSize int, role Role, x, y, z int) gg.Matrix {
	return project(v.Base(), float64(tileSize), role, float64(x), float64(y), float64(z))
}

func project(m gg.Matrix, ts float64, role Role, x, y, z float64) gg.Matrix {
	switch role {
	case RoleLeft:
		return m.
			Translate(ts*(x-y), ts*(z-y/2-x/2)*-1).
			Shear(0, 0.5)
	case RoleRight:
		return m.
			Translate(ts*(x-y+1), ts*(((z-y/2-x/2)*-1)+0.5)).
			Shear(0, -0.5)
	case RoleTop:
		return m.
			Scale(2/math.Sqrt(2), 1/math.Sqrt(2)).
			Rotate(math.Pi/4).
			Translate(ts*(x-z), ts*(y-z-1))
	}
	return m
}
