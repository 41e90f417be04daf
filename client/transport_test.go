package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

func newTestSession() (*Session, *Store, *fakeSocket) {
	store, _ := newTestStore()
	socket := &fakeSocket{}
	session := NewSession("42", "user-1", socket, store)
	return session, store, socket
}

func TestSession_JoinAndLeave(t *testing.T) {
	session, _, socket := newTestSession()

	require.NoError(t, session.JoinRoom())
	require.NoError(t, session.LeaveRoom())

	require.Len(t, socket.writes, 2)
	assert.JSONEq(t, `{"type":"join_room","roomId":"42"}`, string(socket.writes[0]))
	assert.JSONEq(t, `{"type":"leave_room","roomId":"42"}`, string(socket.writes[1]))
}

func TestSession_HandleMessage_PeerChat(t *testing.T) {
	session, store, _ := newTestSession()

	session.HandleMessage([]byte(`{"type":"chat","roomId":"42","userId":"user-2","chatId":7,` +
		`"message":"{\"shape\":{\"type\":\"rect\",\"x\":10,\"y\":10,\"width\":50,\"height\":30}}"}`))

	require.Len(t, store.Shapes(), 1)
	assert.Equal(t, shape.Rect{X: 10, Y: 10, Width: 50, Height: 30}, store.Shapes()[0])
}

func TestSession_HandleMessage_OtherRoomIgnored(t *testing.T) {
	session, store, _ := newTestSession()

	session.HandleMessage([]byte(`{"type":"chat","roomId":"99","userId":"user-2","chatId":7,` +
		`"message":"{\"shape\":{\"type\":\"circle\",\"centerX\":0,\"centerY\":0,\"radius\":1}}"}`))

	assert.Empty(t, store.Shapes())
}

func TestSession_HandleMessage_SelfEcho(t *testing.T) {
	session, store, _ := newTestSession()

	local := shape.Rect{X: 10, Y: 10, Width: 50, Height: 30}
	store.AppendLocal(local)

	session.HandleMessage([]byte(`{"type":"chat","roomId":"42","userId":"user-1","chatId":8,` +
		`"message":"{\"shape\":{\"type\":\"rect\",\"x\":10,\"y\":10,\"width\":50,\"height\":30}}"}`))

	assert.Len(t, store.Shapes(), 1)
}

func TestSession_HandleMessage_DropsGarbage(t *testing.T) {
	session, store, _ := newTestSession()

	session.HandleMessage([]byte(`not json`))
	session.HandleMessage([]byte(`{"type":"chat","roomId":"42","userId":"u","chatId":1,"message":"broken"}`))
	session.HandleMessage([]byte(`{"type":"error","roomId":"42","message":"Room not found"}`))

	assert.Empty(t, store.Shapes())
}

func TestSession_SendAfterCloseIsSwallowed(t *testing.T) {
	session, store, socket := newTestSession()
	session.Close()

	assert.NoError(t, session.SendShape(shape.Rect{X: 0, Y: 0, Width: 1, Height: 1}))
	assert.NoError(t, session.LeaveRoom())
	assert.Empty(t, socket.writes)

	// Local drawing still works after the socket is gone.
	store.AppendLocal(shape.Circle{CenterX: 0, CenterY: 0, Radius: 1})
	assert.Len(t, store.Shapes(), 1)
}
