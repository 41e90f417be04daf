package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

const pingInterval = time.Second * 30

var (
	errRoomNotFoundStr      = "Room not found"
	errNotAMemberStr        = "You are not a member of this room"
	errPersistenceFailedStr = "Failed to send message"
)

type Handler struct {
	registry    *Registry
	broadcaster *Broadcaster
	tokens      TokenVerifier
	upgrader    websocket.Upgrader
}

func NewHandler(registry *Registry, broadcaster *Broadcaster, tokens TokenVerifier) *Handler {
	return &Handler{
		registry:    registry,
		broadcaster: broadcaster,
		tokens:      tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve authenticates the handshake and runs the connection's read loop.
// The token comes as a query parameter; a rejected token refuses the
// connection before any message exchange.
func (h *Handler) Serve(ctx *gin.Context) {
	token := ctx.Query("token")
	userId, err := h.tokens.Verify(token)
	if err != nil {
		log.Warn().Err(err).Str("ip", ctx.ClientIP()).Msg("websocket handshake rejected")
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	session := NewWebsocketSession(conn)
	c := h.registry.Register(userId, session)
	go c.WritePump(pingInterval)

	h.readPump(c, session)
}

func (h *Handler) readPump(c *Connection, session NetworkSession) {
	defer func() {
		h.registry.Unregister(c)
		session.Close("")
	}()

	for {
		data, err := session.Read()
		if err != nil {
			return
		}

		if !c.limiter.Allow() {
			log.Warn().Str("userId", c.UserId()).Msg("dropping message, rate limit exceeded")
			continue
		}

		msg, err := ParseClientMessage(data)
		if err != nil {
			log.Warn().Err(err).Str("userId", c.UserId()).Msg("dropping malformed message")
			continue
		}

		switch msg.Type {
		case MessageTypeJoin:
			h.registry.Join(c, msg.RoomId)
		case MessageTypeLeave:
			h.registry.Leave(c, msg.RoomId)
		case MessageTypeChat:
			h.handleChat(c, msg)
		}
	}
}

func (h *Handler) handleChat(c *Connection, msg ClientMessage) {
	_, err := h.broadcaster.HandleDrawEvent(context.Background(), c, msg.RoomId, msg.Message)
	if err == nil {
		return
	}

	// Rejections go back to the sender only; they never tear down the
	// connection.
	var reason string
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		reason = errRoomNotFoundStr
	case errors.Is(err, ErrNotAMember):
		reason = errNotAMemberStr
	default:
		reason = errPersistenceFailedStr
	}

	log.Warn().Err(err).Str("userId", c.UserId()).Str("roomId", msg.RoomId).Msg("draw event rejected")

	if sendErr := c.Send(marshalError(reason, msg.RoomId)); sendErr != nil {
		log.Warn().Err(sendErr).Str("connId", c.Id()).Msg("could not report rejection to sender")
	}
}
