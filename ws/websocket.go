package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = time.Second * 20
	pongTimeout  = time.Minute
)

type WebsocketSession struct {
	socket *websocket.Conn
}

func NewWebsocketSession(conn *websocket.Conn) *WebsocketSession {
	conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})
	return &WebsocketSession{socket: conn}
}

func (s *WebsocketSession) Write(data []byte) error {
	s.socket.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.socket.WriteMessage(websocket.TextMessage, data)
}

func (s *WebsocketSession) Ping() error {
	return s.socket.WriteMessage(websocket.PingMessage, nil)
}

func (s *WebsocketSession) Read() ([]byte, error) {
	_, p, err := s.socket.ReadMessage()
	return p, err
}

func (s *WebsocketSession) Close(reason string) {
	s.socket.SetWriteDeadline(time.Now().Add(writeTimeout))
	s.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	s.socket.Close()
}
