package main

import (
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
)

func TestGeoMMatchesMatrix(t *testing.T) {
	m := gg.Identity().Translate(10, 20).Scale(2, 2).Shear(0, 0.5)
	g := geoM(m)

	for _, p := range [][2]float64{{0, 0}, {300, 0}, {0, 300}, {12.5, -7}} {
		ex, ey := m.TransformPoint(p[0], p[1])
		gx, gy := g.Apply(p[0], p[1])
		assert.InDelta(t, ex, gx, 1e-9)
		assert.InDelta(t, ey, gy, 1e-9)
	}
}
