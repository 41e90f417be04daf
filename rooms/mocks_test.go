package rooms

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) CreateRoom(ctx context.Context, slug, adminId string) (string, error) {
	args := m.Called(ctx, slug, adminId)
	return args.String(0), args.Error(1)
}

func (m *MockRoomRepo) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Room), args.Error(1)
}

func (m *MockRoomRepo) GetChatsByRoom(ctx context.Context, roomId string, limit int) ([]domain.Chat, error) {
	args := m.Called(ctx, roomId, limit)
	return args.Get(0).([]domain.Chat), args.Error(1)
}
