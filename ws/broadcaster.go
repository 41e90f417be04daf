package ws

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

// Broadcaster validates, persists and fans out drawing events. Events for
// one room are processed strictly one at a time (persist, then fan out, then
// the next event); events for different rooms proceed in parallel.
type Broadcaster struct {
	registry *Registry
	rooms    RoomStore
	events   EventStore

	mu        sync.Mutex
	roomLocks map[string]*roomLock
}

// roomLock is reference counted so the map entry can be dropped once the
// last in-flight event for the room releases it.
type roomLock struct {
	mu   sync.Mutex
	refs int
}

func NewBroadcaster(registry *Registry, rooms RoomStore, events EventStore) *Broadcaster {
	return &Broadcaster{
		registry:  registry,
		rooms:     rooms,
		events:    events,
		roomLocks: make(map[string]*roomLock),
	}
}

func (b *Broadcaster) acquireRoomLock(roomId string) *roomLock {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.roomLocks[roomId]
	if !ok {
		l = &roomLock{}
		b.roomLocks[roomId] = l
	}
	l.refs++
	return l
}

func (b *Broadcaster) releaseRoomLock(roomId string, l *roomLock) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(b.roomLocks, roomId)
	}
}

// HandleDrawEvent runs the full accept path for one event: room existence,
// sender membership, persist, fan out. The returned error is for the sender
// only; fan-out failures to individual recipients never surface here.
func (b *Broadcaster) HandleDrawEvent(ctx context.Context, sender *Connection, roomId, message string) (int64, error) {
	lock := b.acquireRoomLock(roomId)
	defer b.releaseRoomLock(roomId, lock)
	lock.mu.Lock()
	defer lock.mu.Unlock()

	exists, err := b.rooms.RoomExists(ctx, roomId)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	if !exists {
		return 0, domain.ErrRoomNotFound
	}

	if !b.registry.IsMember(sender, roomId) {
		return 0, ErrNotAMember
	}

	chatId, err := b.events.CreateChat(ctx, roomId, sender.UserId(), message)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	// Membership is snapshotted after the persist so the registry lock is
	// never held across a storage call. The sender receives its own echo.
	data := marshalChat(roomId, sender.UserId(), message, chatId)
	for _, member := range b.registry.MembersOf(roomId) {
		if err := member.Send(data); err != nil {
			log.Warn().
				Err(err).
				Str("roomId", roomId).
				Str("connId", member.Id()).
				Int64("chatId", chatId).
				Msg("fan-out send failed")
		}
	}

	return chatId, nil
}
