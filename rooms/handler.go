package rooms

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

var (
	ErrInvalidRequestFormatStr = "bad-request-format"
	ErrInvalidSlugFormatStr    = "invalid-slug-format"
	ErrSlugAlreadyExistsStr    = "slug-already-exists"
	ErrRoomNotFoundStr         = "room-not-found"
	ErrServerTimeoutStr        = "server-timeout"
	ErrUnknownStr              = "unknown-error"
)

type Handler struct {
	roomService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{roomService: service}
}

type chatResponse struct {
	Id      int64  `json:"id"`
	UserId  string `json:"userId"`
	Message string `json:"message"`
}

func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	userId := ctx.GetString("userId")
	if userId == "" {
		log.Error().Str("ip", ctx.ClientIP()).Msg("userId missing from context, middleware misconfigured")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrInvalidRequestFormatStr})
		return
	}

	roomId, err := h.roomService.CreateRoom(ctx.Request.Context(), body.Name, userId)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlugFormat):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidSlugFormatStr})
		case errors.Is(err, domain.ErrDuplicateSlug):
			ctx.JSON(http.StatusConflict, gin.H{"error": ErrSlugAlreadyExistsStr})
		case errors.Is(err, context.DeadlineExceeded):
			ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": ErrServerTimeoutStr})
		case errors.Is(err, context.Canceled):
			ctx.Status(499)
		default:
			log.Error().Err(err).Msg("create room failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		}
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"roomId": roomId})
}

func (h *Handler) GetRoomHandler(ctx *gin.Context) {
	room, err := h.roomService.GetRoomBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": ErrRoomNotFoundStr})
		default:
			log.Error().Err(err).Msg("room lookup failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		}
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": gin.H{"id": room.Id, "slug": room.Slug, "adminId": room.AdminId}})
}

// GetChatsHandler serves the persisted history a client seeds from, in
// durable order.
func (h *Handler) GetChatsHandler(ctx *gin.Context) {
	chats, err := h.roomService.GetHistory(ctx.Request.Context(), ctx.Param("roomId"))
	if err != nil {
		log.Error().Err(err).Str("roomId", ctx.Param("roomId")).Msg("history fetch failed")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		return
	}

	messages := make([]chatResponse, 0, len(chats))
	for _, chat := range chats {
		messages = append(messages, chatResponse{Id: chat.Id, UserId: chat.UserId, Message: chat.Message})
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": messages})
}
