package ws

import (
	"encoding/json"
	"fmt"
)

const (
	MessageTypeJoin  = "join_room"
	MessageTypeLeave = "leave_room"
	MessageTypeChat  = "chat"
	MessageTypeError = "error"
)

// ClientMessage is the envelope a client sends. For chat messages, Message
// is itself a serialized {"shape": ...} payload the server treats as
// opaque.
type ClientMessage struct {
	Type    string `json:"type"`
	RoomId  string `json:"roomId"`
	Message string `json:"message,omitempty"`
}

// ServerChatMessage is the broadcast echo of an accepted drawing event.
type ServerChatMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	RoomId  string `json:"roomId"`
	UserId  string `json:"userId"`
	ChatId  int64  `json:"chatId"`
}

// ServerErrorMessage is sent to the originating connection only.
type ServerErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	RoomId  string `json:"roomId,omitempty"`
}

// ParseClientMessage decodes and validates an incoming envelope. Malformed
// payloads are errors for the caller to drop with a warning.
func ParseClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, err
	}

	switch msg.Type {
	case MessageTypeJoin, MessageTypeLeave, MessageTypeChat:
	default:
		return ClientMessage{}, fmt.Errorf("unknown message type %q", msg.Type)
	}

	if msg.RoomId == "" {
		return ClientMessage{}, fmt.Errorf("%s message without roomId", msg.Type)
	}
	if msg.Type == MessageTypeChat && msg.Message == "" {
		return ClientMessage{}, fmt.Errorf("chat message without payload")
	}

	return msg, nil
}

func marshalChat(roomId, userId, message string, chatId int64) []byte {
	data, _ := json.Marshal(ServerChatMessage{
		Type:    MessageTypeChat,
		Message: message,
		RoomId:  roomId,
		UserId:  userId,
		ChatId:  chatId,
	})
	return data
}

func marshalError(message, roomId string) []byte {
	data, _ := json.Marshal(ServerErrorMessage{
		Type:    MessageTypeError,
		Message: message,
		RoomId:  roomId,
	})
	return data
}
