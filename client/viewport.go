// Package client holds the canvas-side core: the viewport transform, the
// shape store, the tool/input state machine, and the socket/history glue.
// None of it touches a real canvas or socket; rendering and transport are
// narrow interfaces so the whole package runs under plain tests.
package client

// Point is a pair of coordinates; whether it is screen- or world-space
// depends on which side of the viewport transform it is on.
type Point struct {
	X float64
	Y float64
}

const (
	minScale = 0.1
	maxScale = 10
)

// Viewport maintains the pan offset and zoom scale mapping between screen
// and world coordinates. It is strictly client-local: never transmitted,
// never persisted.
type Viewport struct {
	panX  float64
	panY  float64
	scale float64
}

func NewViewport() *Viewport {
	return &Viewport{scale: 1}
}

func (v *Viewport) PanX() float64  { return v.panX }
func (v *Viewport) PanY() float64  { return v.panY }
func (v *Viewport) Scale() float64 { return v.scale }

func (v *Viewport) ToWorld(p Point) Point {
	return Point{
		X: (p.X - v.panX) / v.scale,
		Y: (p.Y - v.panY) / v.scale,
	}
}

func (v *Viewport) ToScreen(p Point) Point {
	return Point{
		X: p.X*v.scale + v.panX,
		Y: p.Y*v.scale + v.panY,
	}
}

// Pan shifts the viewport by a screen-space delta; a drag pans 1:1
// regardless of scale. Panning is unclamped.
func (v *Viewport) Pan(dx, dy float64) {
	v.panX += dx
	v.panY += dy
}

// Zoom adjusts the scale by deltaScale and recomputes the pan so the world
// point under the screen focal point stays under it. Scale is clamped to
// [minScale, maxScale].
func (v *Viewport) Zoom(focal Point, deltaScale float64) {
	newScale := v.scale + deltaScale
	if newScale < minScale {
		newScale = minScale
	}
	if newScale > maxScale {
		newScale = maxScale
	}

	ratio := newScale / v.scale
	v.panX = focal.X - (focal.X-v.panX)*ratio
	v.panY = focal.Y - (focal.Y-v.panY)*ratio
	v.scale = newScale
}
