package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

func newTestStore() (*Store, *fakeSurface) {
	surface := &fakeSurface{}
	store := NewStore(surface, NewViewport())
	return store, surface
}

func TestStore_SeedReplacesAndRenders(t *testing.T) {
	store, surface := newTestStore()

	store.AppendLocal(shape.Rect{X: 1, Y: 1, Width: 1, Height: 1})
	store.Seed([]shape.Shape{
		shape.Circle{CenterX: 0, CenterY: 0, Radius: 5},
		shape.Pencil{StartX: 0, StartY: 0, EndX: 1, EndY: 1},
	})

	require.Len(t, store.Shapes(), 2)
	assert.Equal(t, []string{"circle", "line"}, surface.ops)
}

func TestStore_AppendLocalTransmits(t *testing.T) {
	store, _ := newTestStore()
	socket := &fakeSocket{}
	NewSession("42", "user-1", socket, store)

	store.AppendLocal(shape.Rect{X: 10, Y: 10, Width: 50, Height: 30})

	require.Len(t, socket.writes, 1)
	assert.JSONEq(t,
		`{"type":"chat","roomId":"42","message":"{\"shape\":{\"type\":\"rect\",\"x\":10,\"y\":10,\"width\":50,\"height\":30}}"}`,
		string(socket.writes[0]))
}

func TestStore_AppendRemoteDoesNotTransmit(t *testing.T) {
	store, _ := newTestStore()
	socket := &fakeSocket{}
	NewSession("42", "user-1", socket, store)

	store.AppendRemote(shape.Circle{CenterX: 1, CenterY: 1, Radius: 1}, false)

	assert.Len(t, store.Shapes(), 1)
	assert.Empty(t, socket.writes)
}

func TestStore_SendFailureIsSwallowed(t *testing.T) {
	store, _ := newTestStore()
	socket := &fakeSocket{err: errSocketDown}
	NewSession("42", "user-1", socket, store)

	store.AppendLocal(shape.Rect{X: 0, Y: 0, Width: 1, Height: 1})

	// The optimistic render happened regardless of delivery.
	assert.Len(t, store.Shapes(), 1)
}

func TestStore_SelfEchoIsDeduplicated(t *testing.T) {
	store, _ := newTestStore()
	local := shape.Rect{X: 10, Y: 10, Width: 50, Height: 30}

	store.AppendLocal(local)
	require.Len(t, store.Shapes(), 1)

	// The server echo of the same shape, authored by this client.
	store.AppendRemote(local, true)
	assert.Len(t, store.Shapes(), 1, "echo must not duplicate the optimistic append")

	// A second identical self-authored event is a genuine new shape
	// (e.g. drawn twice), not an echo.
	store.AppendRemote(local, true)
	assert.Len(t, store.Shapes(), 2)
}

func TestStore_PeerShapeEqualToLocalIsKept(t *testing.T) {
	store, _ := newTestStore()
	local := shape.Circle{CenterX: 5, CenterY: 5, Radius: 5}

	store.AppendLocal(local)
	store.AppendRemote(local, false)

	assert.Len(t, store.Shapes(), 2, "a peer's identical shape is not an echo")
}

func TestStore_RemoveWhere(t *testing.T) {
	store, surface := newTestStore()
	store.Seed([]shape.Shape{
		shape.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		shape.Circle{CenterX: 100, CenterY: 100, Radius: 5},
		shape.Rect{X: 2, Y: 2, Width: 4, Height: 4},
	})

	removed := store.RemoveWhere(func(s shape.Shape) bool {
		_, isRect := s.(shape.Rect)
		return isRect
	})

	assert.Equal(t, 2, removed)
	require.Len(t, store.Shapes(), 1)
	assert.Equal(t, []string{"circle"}, surface.ops)
}

func TestStore_RenderDrawsAbsoluteRadius(t *testing.T) {
	store, surface := newTestStore()
	store.Seed([]shape.Shape{shape.Circle{CenterX: 0, CenterY: 0, Radius: -7}})

	require.Len(t, surface.circs, 1)
	assert.Equal(t, 7.0, surface.circs[0][2])
}
