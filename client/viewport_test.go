package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestViewport_RoundTrip(t *testing.T) {
	viewports := []*Viewport{
		NewViewport(),
		{panX: 100, panY: -50, scale: 2},
		{panX: -3.7, panY: 12.2, scale: 0.25},
	}
	points := []Point{{0, 0}, {10, 10}, {-55.5, 1234}, {0.001, -0.001}}

	for _, v := range viewports {
		for _, p := range points {
			got := v.ToWorld(v.ToScreen(p))
			assert.InDelta(t, p.X, got.X, epsilon)
			assert.InDelta(t, p.Y, got.Y, epsilon)
		}
	}
}

func TestViewport_PanIsScreenSpace(t *testing.T) {
	v := &Viewport{scale: 4}
	v.Pan(10, -20)

	// Pan is 1:1 with the drag regardless of scale.
	assert.Equal(t, 10.0, v.PanX())
	assert.Equal(t, -20.0, v.PanY())
}

func TestViewport_ZoomKeepsFocalPointFixed(t *testing.T) {
	v := &Viewport{panX: 30, panY: -10, scale: 1}
	focal := Point{X: 200, Y: 150}

	before := v.ToWorld(focal)
	v.Zoom(focal, 1.5)
	after := v.ToWorld(focal)

	assert.InDelta(t, before.X, after.X, epsilon)
	assert.InDelta(t, before.Y, after.Y, epsilon)
	assert.InDelta(t, 2.5, v.Scale(), epsilon)
}

func TestViewport_ZoomClamps(t *testing.T) {
	v := NewViewport()

	v.Zoom(Point{}, 1000)
	assert.Equal(t, 10.0, v.Scale())

	v.Zoom(Point{}, -1000)
	assert.Equal(t, 0.1, v.Scale())
}

func TestViewport_ZoomAtClampBoundaryKeepsFocal(t *testing.T) {
	v := &Viewport{panX: 5, panY: 5, scale: 9.5}
	focal := Point{X: 40, Y: 40}

	before := v.ToWorld(focal)
	v.Zoom(focal, 3) // clamps to 10
	after := v.ToWorld(focal)

	assert.InDelta(t, before.X, after.X, epsilon)
	assert.InDelta(t, before.Y, after.Y, epsilon)
	assert.Equal(t, 10.0, v.Scale())
}
