package client

import (
	"encoding/json"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

// Socket is the outgoing half of the websocket.
type Socket interface {
	Write(data []byte) error
}

type clientEnvelope struct {
	Type    string `json:"type"`
	RoomId  string `json:"roomId"`
	Message string `json:"message,omitempty"`
}

type serverEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	RoomId  string `json:"roomId"`
	UserId  string `json:"userId"`
	ChatId  int64  `json:"chatId"`
}

// Session binds the store to one room's websocket traffic. It implements
// Sender for outgoing shapes and decodes incoming broadcasts into remote
// appends.
type Session struct {
	roomId string
	userId string
	socket Socket
	store  *Store
	closed atomic.Bool
}

func NewSession(roomId, userId string, socket Socket, store *Store) *Session {
	s := &Session{
		roomId: roomId,
		userId: userId,
		socket: socket,
		store:  store,
	}
	store.SetSender(s)
	return s
}

// Close marks the session dead. Further sends become silent no-ops; a
// closed socket is not a user-facing failure.
func (s *Session) Close() {
	s.closed.Store(true)
}

func (s *Session) JoinRoom() error {
	return s.send(clientEnvelope{Type: "join_room", RoomId: s.roomId})
}

func (s *Session) LeaveRoom() error {
	return s.send(clientEnvelope{Type: "leave_room", RoomId: s.roomId})
}

// SendShape implements Sender.
func (s *Session) SendShape(sh shape.Shape) error {
	payload, err := json.Marshal(shape.Envelope{Shape: sh})
	if err != nil {
		return err
	}
	return s.send(clientEnvelope{Type: "chat", RoomId: s.roomId, Message: string(payload)})
}

func (s *Session) send(env clientEnvelope) error {
	if s.closed.Load() {
		return nil
	}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.socket.Write(data)
}

// HandleMessage processes one incoming server frame. Frames for other
// rooms, error reports and unparseable payloads never mutate the store.
func (s *Session) HandleMessage(data []byte) {
	var env serverEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Msg("dropping unparseable server message")
		return
	}

	switch env.Type {
	case "chat":
		if env.RoomId != s.roomId {
			return
		}
		var payload shape.Envelope
		if err := json.Unmarshal([]byte(env.Message), &payload); err != nil {
			log.Warn().Err(err).Int64("chatId", env.ChatId).Msg("dropping chat with bad shape payload")
			return
		}
		s.store.AppendRemote(payload.Shape, env.UserId == s.userId)

	case "error":
		log.Warn().Str("roomId", env.RoomId).Str("reason", env.Message).Msg("server rejected an event")

	default:
		log.Warn().Str("type", env.Type).Msg("unknown server message type")
	}
}
