package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const outboxSize = 256

// Freehand drawing emits one event per pointer move, so the per-connection
// limiter has to admit a sustained high rate; it exists to stop floods,
// not to pace drawing.
const (
	eventRate  rate.Limit = 120
	eventBurst            = 240
)

// Connection is one live authenticated transport session. Its joined-room
// set is guarded by the owning Registry's lock; everything else is either
// immutable after creation or confined to the connection's own pumps.
type Connection struct {
	id      string
	userId  string
	session NetworkSession
	limiter *rate.Limiter

	rooms map[string]struct{}

	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(userId string, session NetworkSession) *Connection {
	return &Connection{
		id:      uuid.NewString(),
		userId:  userId,
		session: session,
		limiter: rate.NewLimiter(eventRate, eventBurst),
		rooms:   make(map[string]struct{}),
		outbox:  make(chan []byte, outboxSize),
		done:    make(chan struct{}),
	}
}

func (c *Connection) Id() string     { return c.id }
func (c *Connection) UserId() string { return c.userId }

// Send queues data for the write pump. It never blocks: a full buffer or a
// closed connection is reported as an error for the caller to log.
func (c *Connection) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}
	select {
	case c.outbox <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// WritePump serializes all writes to the session. It exits when the
// connection is closed or the transport errors.
func (c *Connection) WritePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data := <-c.outbox:
			if err := c.session.Write(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.session.Ping(); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
