package geomorph

import (
	"math"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
)

const side = 300.0

type pt struct{ X, Y float64 }

func corner(m gg.Matrix, u, v float64) pt {
	x, y := m.TransformPoint(u, v)
	return pt{x, y}
}

func assertSamePoint(t *testing.T, want, got pt, msg ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msg...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msg...)
}

func unitView() View {
	return View{Zoom: 1}
}

func TestProjectLeftCorners(t *testing.T) {
	m := unitView().Project(side, RoleLeft, 0, 0, 0)

	assertSamePoint(t, pt{0, 0}, corner(m, 0, 0))
	assertSamePoint(t, pt{side, side / 2}, corner(m, side, 0))
	assertSamePoint(t, pt{0, side}, corner(m, 0, side))
	assertSamePoint(t, pt{side, 3 * side / 2}, corner(m, side, side))
}

func TestProjectRightCorners(t *testing.T) {
	m := unitView().Project(side, RoleRight, 0, 0, 0)

	assertSamePoint(t, pt{side, side / 2}, corner(m, 0, 0))
	assertSamePoint(t, pt{2 * side, 0}, corner(m, side, 0))
	assertSamePoint(t, pt{side, 3 * side / 2}, corner(m, 0, side))
	assertSamePoint(t, pt{2 * side, side}, corner(m, side, side))
}

func TestProjectTopIsDiamond(t *testing.T) {
	m := unitView().Project(side, RoleTop, 0, 0, 0)

	assertSamePoint(t, pt{side, -side / 2}, corner(m, 0, 0))
	assertSamePoint(t, pt{2 * side, 0}, corner(m, side, 0))
	assertSamePoint(t, pt{0, 0}, corner(m, 0, side))
	assertSamePoint(t, pt{side, side / 2}, corner(m, side, side))
}

func TestProjectFacesShareEdges(t *testing.T) {
	views := []View{
		unitView(),
		{Zoom: 0.5, OriginX: 340, OriginY: 360, ScrollX: -17, ScrollY: 42},
	}

	for _, v := range views {
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				for z := -2; z <= 2; z++ {
					l := v.Project(side, RoleLeft, x, y, z)
					r := v.Project(side, RoleRight, x, y, z)
					top := v.Project(side, RoleTop, x, y, z)

					// left face's right edge is the right face's left edge
					assertSamePoint(t, corner(l, side, 0), corner(r, 0, 0), x, y, z)
					assertSamePoint(t, corner(l, side, side), corner(r, 0, side), x, y, z)

					// the cap sits on both side faces
					assertSamePoint(t, corner(l, 0, 0), corner(top, 0, side), x, y, z)
					assertSamePoint(t, corner(l, side, 0), corner(top, side, side), x, y, z)
					assertSamePoint(t, corner(r, side, 0), corner(top, side, 0), x, y, z)
				}
			}
		}
	}
}

func TestProjectNeighboursShareEdges(t *testing.T) {
	v := View{Zoom: 0.5, OriginX: 100, OriginY: 200}

	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			for z := -2; z <= 2; z++ {
				// stacking: a cube's bottom edge is the top edge of the one below
				below := v.Project(side, RoleLeft, x, y, z)
				above := v.Project(side, RoleLeft, x, y, z+1)
				assertSamePoint(t, corner(below, 0, 0), corner(above, 0, side))
				assertSamePoint(t, corner(below, side, 0), corner(above, side, side))

				// the cap of a cube is the floor of the cube above it
				capBelow := v.Project(side, RoleTop, x, y, z)
				belowR := v.Project(side, RoleRight, x, y, z+1)
				assertSamePoint(t, corner(capBelow, side, side), corner(belowR, 0, side))

				// +x steps down and right by one right-face width
				r := v.Project(side, RoleRight, x, y, z)
				nextL := v.Project(side, RoleLeft, x+1, y, z)
				assertSamePoint(t, corner(r, 0, 0), corner(nextL, 0, 0))

				// +y steps down and left: its front edge starts where our left face ends
				l := v.Project(side, RoleLeft, x, y, z)
				nextR := v.Project(side, RoleRight, x, y+1, z)
				assertSamePoint(t, corner(l, 0, side), corner(nextR, 0, 0))
			}
		}
	}
}

func TestBaseAppliesZoomThenOffset(t *testing.T) {
	v := View{Zoom: 0.5, OriginX: 10, OriginY: 20, ScrollX: 1, ScrollY: 2}

	got := corner(v.Base(), 100, 100)

	assertSamePoint(t, pt{61, 72}, got)
}

func TestTopScaleCoefficients(t *testing.T) {
	m := unitView().Project(side, RoleTop, 0, 0, 0)
	// linear part: scale(2/√2, 1/√2) * rotate(45°)
	c := math.Cos(math.Pi / 4)
	assert.InDelta(t, 2/math.Sqrt(2)*c, m.XX, 1e-12)
	assert.InDelta(t, 1/math.Sqrt(2)*c, m.YX, 1e-12)
}
