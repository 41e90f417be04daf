package ws

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry owns the set of live connections and each connection's
// joined-room set. All membership mutations go through it under one lock,
// so MembersOf is always consistent with the net join/leave/unregister
// sequence.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Connection
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Connection),
	}
}

// Register adds an authenticated connection with an empty room set.
func (r *Registry) Register(userId string, session NetworkSession) *Connection {
	c := newConnection(userId, session)

	r.mu.Lock()
	r.conns[c.id] = c
	count := len(r.conns)
	r.mu.Unlock()

	log.Info().Str("userId", userId).Str("connId", c.id).Int("connections", count).Msg("connection registered")
	return c
}

// Join is idempotent. It does not verify the room exists; existence is
// checked lazily when the first event for the room arrives.
func (r *Registry) Join(c *Connection, roomId string) {
	r.mu.Lock()
	c.rooms[roomId] = struct{}{}
	r.mu.Unlock()

	log.Info().Str("userId", c.userId).Str("roomId", roomId).Msg("joined room")
}

// Leave removes roomId from the connection's set; no-op if absent.
func (r *Registry) Leave(c *Connection, roomId string) {
	r.mu.Lock()
	delete(c.rooms, roomId)
	r.mu.Unlock()

	log.Info().Str("userId", c.userId).Str("roomId", roomId).Msg("left room")
}

// Unregister removes the connection entirely. Safe to call concurrently
// with an in-flight broadcast: a sender holding a stale handle just sees
// its Send fail.
func (r *Registry) Unregister(c *Connection) {
	r.mu.Lock()
	_, present := r.conns[c.id]
	delete(r.conns, c.id)
	count := len(r.conns)
	r.mu.Unlock()

	c.close()

	if present {
		log.Info().Str("userId", c.userId).Str("connId", c.id).Int("connections", count).Msg("connection unregistered")
	}
}

// IsMember reports whether the connection has joined roomId.
func (r *Registry) IsMember(c *Connection, roomId string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := c.rooms[roomId]
	return ok
}

// MembersOf returns a fresh snapshot of every registered connection whose
// room set contains roomId. Callers send to the snapshot after the lock is
// released.
func (r *Registry) MembersOf(roomId string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []*Connection
	for _, c := range r.conns {
		if _, ok := c.rooms[roomId]; ok {
			members = append(members, c)
		}
	}
	return members
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
