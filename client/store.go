package client

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

// Surface is what the store needs from a drawing target. Begin resets the
// surface, fills the background and installs the viewport transform; the
// stroke calls then take world coordinates.
type Surface interface {
	Begin(panX, panY, scale float64)
	StrokeRect(x, y, width, height float64)
	StrokeCircle(centerX, centerY, radius float64)
	StrokeLine(x1, y1, x2, y2 float64)
}

// Sender transmits a locally committed shape to the server.
type Sender interface {
	SendShape(s shape.Shape) error
}

// Store is the ordered shape sequence for the open room. Insertion order
// is arrival order at this client; local and remote appends share the one
// sequence. Every mutation triggers a full synchronous redraw.
type Store struct {
	shapes   []shape.Shape
	surface  Surface
	viewport *Viewport
	sender   Sender

	// Shapes committed locally and not yet echoed back by the server.
	// The first self-authored echo matching an entry is dropped instead
	// of appended, so the optimistic render is not duplicated.
	pendingEcho []shape.Shape
}

func NewStore(surface Surface, viewport *Viewport) *Store {
	return &Store{
		surface:  surface,
		viewport: viewport,
	}
}

// SetSender wires the outgoing transport. Until one is set, local appends
// render but do not transmit.
func (s *Store) SetSender(sender Sender) {
	s.sender = sender
}

func (s *Store) Shapes() []shape.Shape {
	return s.shapes
}

// Seed replaces the whole sequence from the persisted-history fetch.
func (s *Store) Seed(shapes []shape.Shape) {
	s.shapes = append([]shape.Shape(nil), shapes...)
	s.pendingEcho = nil
	s.Render()
}

// AppendLocal pushes a locally created shape, redraws, and transmits it.
// Send errors are swallowed: the optimistic render is independent of
// delivery, and a closed socket must not surface as a drawing failure.
func (s *Store) AppendLocal(sh shape.Shape) {
	s.shapes = append(s.shapes, sh)
	s.pendingEcho = append(s.pendingEcho, sh)
	s.Render()

	if s.sender == nil {
		return
	}
	if err := s.sender.SendShape(sh); err != nil {
		log.Debug().Err(err).Msg("shape send failed")
	}
}

// AppendRemote pushes a shape received from the network. fromSelf marks
// events authored by this client's own user; the first such echo matching
// a pending local shape is the server's confirmation of an optimistic
// append and is not appended again.
func (s *Store) AppendRemote(sh shape.Shape, fromSelf bool) {
	if fromSelf {
		for i, pending := range s.pendingEcho {
			if pending == sh {
				s.pendingEcho = append(s.pendingEcho[:i], s.pendingEcho[i+1:]...)
				return
			}
		}
	}
	s.shapes = append(s.shapes, sh)
	s.Render()
}

// RemoveWhere drops every shape matching the predicate and returns how
// many were removed.
func (s *Store) RemoveWhere(pred func(shape.Shape) bool) int {
	kept := s.shapes[:0]
	removed := 0
	for _, sh := range s.shapes {
		if pred(sh) {
			removed++
			continue
		}
		kept = append(kept, sh)
	}
	s.shapes = kept

	if removed > 0 {
		s.Render()
	}
	return removed
}

// Render redraws the full sequence under the current viewport transform.
// There is no dirty-rect optimization; correctness is the contract.
func (s *Store) Render() {
	s.surface.Begin(s.viewport.PanX(), s.viewport.PanY(), s.viewport.Scale())
	for _, sh := range s.shapes {
		strokeShape(s.surface, sh)
	}
}

func strokeShape(surface Surface, sh shape.Shape) {
	switch v := sh.(type) {
	case shape.Rect:
		surface.StrokeRect(v.X, v.Y, v.Width, v.Height)
	case shape.Circle:
		surface.StrokeCircle(v.CenterX, v.CenterY, math.Abs(v.Radius))
	case shape.Pencil:
		surface.StrokeLine(v.StartX, v.StartY, v.EndX, v.EndY)
	}
}
