// Package shape defines the drawing primitives shared by the websocket
// server and the canvas client, their wire encoding, and the geometric
// predicates the eraser tool uses.
//
// All coordinates are world-space. A freehand stroke is not one shape: it
// is a stream of short Pencil segments, each stored and broadcast on its
// own.
package shape

import (
	"encoding/json"
	"fmt"
)

const (
	TypeRect   = "rect"
	TypeCircle = "circle"
	TypePencil = "pencil"
)

// Shape is implemented by exactly Rect, Circle and Pencil.
type Shape interface {
	Type() string
}

// Rect's width and height carry the drag direction and may be negative.
// They are normalized for hit-testing only, never in storage.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Circle's radius may be negative while a drag is in flight; it is
// rendered and hit-tested by absolute value.
type Circle struct {
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Radius  float64 `json:"radius"`
}

type Pencil struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
}

func (Rect) Type() string   { return TypeRect }
func (Circle) Type() string { return TypeCircle }
func (Pencil) Type() string { return TypePencil }

type taggedShape struct {
	Type    string   `json:"type"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Height  *float64 `json:"height,omitempty"`
	CenterX *float64 `json:"centerX,omitempty"`
	CenterY *float64 `json:"centerY,omitempty"`
	Radius  *float64 `json:"radius,omitempty"`
	StartX  *float64 `json:"startX,omitempty"`
	StartY  *float64 `json:"startY,omitempty"`
	EndX    *float64 `json:"endX,omitempty"`
	EndY    *float64 `json:"endY,omitempty"`
}

func ref(f float64) *float64 { return &f }

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Marshal encodes a shape as the flat tagged JSON object used on the wire
// and in storage, e.g. {"type":"rect","x":10,"y":10,"width":50,"height":30}.
func Marshal(s Shape) ([]byte, error) {
	var t taggedShape
	switch v := s.(type) {
	case Rect:
		t = taggedShape{Type: TypeRect, X: ref(v.X), Y: ref(v.Y), Width: ref(v.Width), Height: ref(v.Height)}
	case Circle:
		t = taggedShape{Type: TypeCircle, CenterX: ref(v.CenterX), CenterY: ref(v.CenterY), Radius: ref(v.Radius)}
	case Pencil:
		t = taggedShape{Type: TypePencil, StartX: ref(v.StartX), StartY: ref(v.StartY), EndX: ref(v.EndX), EndY: ref(v.EndY)}
	default:
		return nil, fmt.Errorf("unknown shape type %T", s)
	}
	return json.Marshal(t)
}

// Unmarshal decodes a flat tagged JSON object into the matching variant.
func Unmarshal(data []byte) (Shape, error) {
	var t taggedShape
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	switch t.Type {
	case TypeRect:
		return Rect{X: deref(t.X), Y: deref(t.Y), Width: deref(t.Width), Height: deref(t.Height)}, nil
	case TypeCircle:
		return Circle{CenterX: deref(t.CenterX), CenterY: deref(t.CenterY), Radius: deref(t.Radius)}, nil
	case TypePencil:
		return Pencil{StartX: deref(t.StartX), StartY: deref(t.StartY), EndX: deref(t.EndX), EndY: deref(t.EndY)}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", t.Type)
	}
}

// Envelope is the payload carried inside a chat message: {"shape": ...}.
type Envelope struct {
	Shape Shape
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	inner, err := Marshal(e.Shape)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{"shape": inner})
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	var outer struct {
		Shape json.RawMessage `json:"shape"`
	}
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	if len(outer.Shape) == 0 {
		return fmt.Errorf("envelope has no shape")
	}
	s, err := Unmarshal(outer.Shape)
	if err != nil {
		return err
	}
	e.Shape = s
	return nil
}
