/*
Package notify implements the session's toast notification queue.

The queue exclusively owns AppNotifications for their lifetime: pushes
prepend (newest first), every item auto-expires after a fixed duration
unless dismissed earlier, and depth is bounded with a drop-oldest policy.
*/
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

// Type enumerates the notification categories rendered by the client.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeParty   Type = "party"
	TypeAlert   Type = "alert"
)

const (
	// DefaultTTL is how long a notification stays up before auto-expiry.
	DefaultTTL = 5 * time.Second

	// MaxDepth bounds the queue. Pushes beyond the bound drop the oldest
	// entry, so a burst of notifications cannot grow without limit.
	MaxDepth = 50
)

// Notification is a single toast entry.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Listener receives queue change events: the pushed notification on push,
// or nil with the removed id on expiry and dismissal.
type Listener func(pushed *Notification, removedID string)

// Queue is the session-scoped notification queue.
type Queue struct {
	mu      sync.Mutex
	items   []Notification
	expiry  map[string]*time.Timer
	ttl     time.Duration
	closed  bool
	onEvent Listener

	logger zerolog.Logger
}

// NewQueue creates a Queue with the default TTL.
func NewQueue() *Queue {
	return NewQueueTTL(DefaultTTL)
}

// NewQueueTTL creates a Queue with a custom TTL. Tests shrink it.
func NewQueueTTL(ttl time.Duration) *Queue {
	return &Queue{
		expiry: make(map[string]*time.Timer),
		ttl:    ttl,
		logger: logx.Logger().With().Str("component", "NotificationQueue").Logger(),
	}
}

// SetListener registers the single change listener. The websocket event
// stream uses this to push queue changes to the device.
func (q *Queue) SetListener(l Listener) {
	q.mu.Lock()
	q.onEvent = l
	q.mu.Unlock()
}

// Push prepends a new notification and schedules its expiry. Returns the
// stored notification.
func (q *Queue) Push(title, message string, typ Type) Notification {
	n := Notification{
		ID:        randx.EntityID(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now(),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return n
	}

	q.items = append([]Notification{n}, q.items...)

	var droppedID string
	if len(q.items) > MaxDepth {
		dropped := q.items[len(q.items)-1]
		q.items = q.items[:len(q.items)-1]
		droppedID = dropped.ID
		if t, ok := q.expiry[dropped.ID]; ok {
			t.Stop()
			delete(q.expiry, dropped.ID)
		}
	}

	id := n.ID
	q.expiry[id] = time.AfterFunc(q.ttl, func() {
		q.remove(id, "expired")
	})

	listener := q.onEvent
	q.mu.Unlock()

	if listener != nil {
		listener(&n, "")
		if droppedID != "" {
			listener(nil, droppedID)
		}
	}

	return n
}

// Dismiss removes exactly the notification with the given id. Unknown ids
// are a no-op, so a dismissal racing its own expiry stays harmless.
func (q *Queue) Dismiss(id string) {
	q.remove(id, "dismissed")
}

// remove deletes one notification and cancels its expiry timer.
func (q *Queue) remove(id, reason string) {
	q.mu.Lock()

	if t, ok := q.expiry[id]; ok {
		t.Stop()
		delete(q.expiry, id)
	}

	found := false
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			found = true
			break
		}
	}

	listener := q.onEvent
	q.mu.Unlock()

	if found {
		q.logger.Debug().Str("notification_id", id).Str("reason", reason).Msg("Notification removed.")
		if listener != nil {
			listener(nil, id)
		}
	}
}

// Items returns a copy of the queue, newest first.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]Notification(nil), q.items...)
}

// Len returns the current queue depth.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Close cancels all pending expiry timers. Used on session teardown so no
// timer fires into a torn-down context.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, t := range q.expiry {
		t.Stop()
		delete(q.expiry, id)
	}
	q.items = nil
	q.onEvent = nil
}
