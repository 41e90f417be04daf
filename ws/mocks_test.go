package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"
)

// --- RoomStore ---

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) RoomExists(ctx context.Context, roomId string) (bool, error) {
	args := m.Called(ctx, roomId)
	return args.Bool(0), args.Error(1)
}

// --- EventStore ---

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) CreateChat(ctx context.Context, roomId, userId, message string) (int64, error) {
	args := m.Called(ctx, roomId, userId, message)
	return args.Get(0).(int64), args.Error(1)
}

// --- TokenVerifier ---

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// --- NetworkSession ---

// fakeSession records writes and serves reads from a channel so tests can
// drive a connection without a real websocket.
type fakeSession struct {
	mu     sync.Mutex
	writes [][]byte
	reads  chan []byte
	closed bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{reads: make(chan []byte, 16)}
}

func (s *fakeSession) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("session closed")
	}
	s.writes = append(s.writes, data)
	return nil
}

func (s *fakeSession) Read() ([]byte, error) {
	data, ok := <-s.reads
	if !ok {
		return nil, errors.New("session closed")
	}
	return data, nil
}

func (s *fakeSession) Ping() error { return nil }

func (s *fakeSession) Close(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
