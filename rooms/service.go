// Package rooms is the CRUD side of the canvas: creating rooms, resolving
// a slug to a room id, and serving the persisted event history clients
// seed their shape store from.
package rooms

import (
	"context"
	"regexp"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

// historyLimit caps one seed fetch; freehand strokes are many small rows.
const historyLimit = 1000

var slugFormat = regexp.MustCompile("^[a-z0-9-]{3,40}$")

type RoomRepo interface {
	CreateRoom(ctx context.Context, slug, adminId string) (string, error)
	GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error)
	GetChatsByRoom(ctx context.Context, roomId string, limit int) ([]domain.Chat, error)
}

type Service struct {
	roomRepo RoomRepo
}

func NewService(roomRepo RoomRepo) *Service {
	return &Service{roomRepo: roomRepo}
}

func (s *Service) CreateRoom(ctx context.Context, slug, adminId string) (string, error) {
	if !slugFormat.MatchString(slug) {
		return "", ErrInvalidSlugFormat
	}
	return s.roomRepo.CreateRoom(ctx, slug, adminId)
}

func (s *Service) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	return s.roomRepo.GetRoomBySlug(ctx, slug)
}

func (s *Service) GetHistory(ctx context.Context, roomId string) ([]domain.Chat, error) {
	return s.roomRepo.GetChatsByRoom(ctx, roomId, historyLimit)
}
