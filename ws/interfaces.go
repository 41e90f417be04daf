package ws

import "context"

// NetworkSession abstracts the websocket so the registry and broadcaster
// can be tested without a real transport.
type NetworkSession interface {
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
	Close(reason string)
}

// TokenVerifier is the auth gate: it turns the handshake token into a
// stable user id or refuses the connection.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RoomStore answers "does room X exist" against persistence.
type RoomStore interface {
	RoomExists(ctx context.Context, roomId string) (bool, error)
}

// EventStore appends one drawing event and returns its durable id, which
// defines the room's persisted order.
type EventStore interface {
	CreateChat(ctx context.Context, roomId, userId, message string) (int64, error)
}
