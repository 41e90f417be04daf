package client

import (
	"math"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

type Tool string

const (
	ToolRect   Tool = "rect"
	ToolCircle Tool = "circle"
	ToolPencil Tool = "pencil"
	ToolEraser Tool = "eraser"
	ToolPan    Tool = "pan"
)

// Game turns raw pointer input into shape operations under the selected
// tool. One gesture is pointer-down, pointer-moves, pointer-up; the tool
// selection is held across gestures.
type Game struct {
	store    *Store
	viewport *Viewport
	surface  Surface

	tool     Tool
	dragging bool

	// downWorld is the gesture's anchor, fixed in world space at
	// pointer-down. Pan/zoom during a drag must not move it, so it is
	// resolved once and never re-derived from the pan.
	downWorld Point
	// prevScreen is the last raw pointer position, used by the pan tool.
	prevScreen Point
	// prevWorld trails the pointer for freehand segment streaming.
	prevWorld Point
}

func NewGame(store *Store, viewport *Viewport, surface Surface) *Game {
	return &Game{
		store:    store,
		viewport: viewport,
		surface:  surface,
		tool:     ToolCircle,
	}
}

func (g *Game) SetTool(tool Tool) {
	g.tool = tool
}

func (g *Game) Tool() Tool {
	return g.tool
}

func (g *Game) PointerDown(screen Point) {
	g.dragging = true
	g.downWorld = g.viewport.ToWorld(screen)
	g.prevWorld = g.downWorld
	g.prevScreen = screen
}

func (g *Game) PointerMove(screen Point) {
	if !g.dragging {
		return
	}

	switch g.tool {
	case ToolPan:
		g.viewport.Pan(screen.X-g.prevScreen.X, screen.Y-g.prevScreen.Y)
		g.prevScreen = screen
		g.store.Render()

	case ToolRect:
		// Live preview only; nothing is committed until pointer-up.
		g.store.Render()
		r := g.rectFrom(screen)
		g.surface.StrokeRect(r.X, r.Y, r.Width, r.Height)

	case ToolCircle:
		g.store.Render()
		c := g.circleFrom(screen)
		g.surface.StrokeCircle(c.CenterX, c.CenterY, math.Abs(c.Radius))

	case ToolPencil:
		// Freehand is a stream of committed micro-segments, not one
		// shape finalized on release.
		cur := g.viewport.ToWorld(screen)
		g.store.AppendLocal(shape.Pencil{
			StartX: g.prevWorld.X,
			StartY: g.prevWorld.Y,
			EndX:   cur.X,
			EndY:   cur.Y,
		})
		g.prevWorld = cur
	}
}

func (g *Game) PointerUp(screen Point) {
	if !g.dragging {
		return
	}
	g.dragging = false

	switch g.tool {
	case ToolRect:
		g.store.AppendLocal(g.rectFrom(screen))
	case ToolCircle:
		g.store.AppendLocal(g.circleFrom(screen))
	case ToolEraser:
		world := g.viewport.ToWorld(screen)
		tolerance := shape.SegmentTolerance / g.viewport.Scale()
		g.store.RemoveWhere(func(s shape.Shape) bool {
			return shape.HitWithin(s, world.X, world.Y, tolerance)
		})
	}
	// Pan and pencil applied their effects incrementally.
}

// Wheel zooms around the pointer position.
func (g *Game) Wheel(focal Point, deltaScale float64) {
	g.viewport.Zoom(focal, deltaScale)
	g.store.Render()
}

func (g *Game) rectFrom(screen Point) shape.Rect {
	cur := g.viewport.ToWorld(screen)
	return shape.Rect{
		X:      g.downWorld.X,
		Y:      g.downWorld.Y,
		Width:  cur.X - g.downWorld.X,
		Height: cur.Y - g.downWorld.Y,
	}
}

// circleFrom follows the draw tool's visual convention: the drag's
// bounding square defines the circle, so the center sits offset from the
// down-point by the signed radius on both axes.
func (g *Game) circleFrom(screen Point) shape.Circle {
	cur := g.viewport.ToWorld(screen)
	width := cur.X - g.downWorld.X
	height := cur.Y - g.downWorld.Y
	radius := math.Max(width, height) / 2
	return shape.Circle{
		CenterX: g.downWorld.X + radius,
		CenterY: g.downWorld.Y + radius,
		Radius:  radius,
	}
}
