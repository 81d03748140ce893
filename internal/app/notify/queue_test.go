package notify

import (
	"fmt"
	"testing"
	"time"
)

func TestQueue_PushNewestFirst(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Push("First", "one", TypeInfo)
	q.Push("Second", "two", TypeSuccess)

	items := q.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(items))
	}
	if items[0].Title != "Second" || items[1].Title != "First" {
		t.Errorf("expected newest first, got %q then %q", items[0].Title, items[1].Title)
	}
	if items[0].ID == items[1].ID {
		t.Error("notifications share an id")
	}
}

func TestQueue_DismissRemovesExactlyOne(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	a := q.Push("A", "", TypeInfo)
	b := q.Push("B", "", TypeInfo)
	c := q.Push("C", "", TypeInfo)

	q.Dismiss(b.ID)

	items := q.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 notifications after dismiss, got %d", len(items))
	}
	for _, n := range items {
		if n.ID == b.ID {
			t.Error("dismissed notification still present")
		}
	}
	if items[0].ID != c.ID || items[1].ID != a.ID {
		t.Error("dismiss disturbed the other notifications")
	}

	// Dismissing again is a no-op.
	q.Dismiss(b.ID)
	if q.Len() != 2 {
		t.Error("repeat dismiss removed something else")
	}
}

func TestQueue_AutoExpiresOnce(t *testing.T) {
	q := NewQueueTTL(30 * time.Millisecond)
	defer q.Close()

	removed := make(chan string, 4)
	q.SetListener(func(pushed *Notification, removedID string) {
		if removedID != "" {
			removed <- removedID
		}
	})

	n := q.Push("Ephemeral", "", TypeInfo)

	select {
	case id := <-removed:
		if id != n.ID {
			t.Errorf("expired id %s, want %s", id, n.ID)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("notification never expired")
	}

	if q.Len() != 0 {
		t.Errorf("expected empty queue after expiry, got %d", q.Len())
	}

	// No second removal event for the same notification.
	select {
	case id := <-removed:
		t.Errorf("unexpected second removal event for %s", id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestQueue_BoundedDropOldest(t *testing.T) {
	q := NewQueueTTL(time.Hour)
	defer q.Close()

	var first Notification
	for i := 0; i < MaxDepth+1; i++ {
		n := q.Push("N", fmt.Sprintf("%d", i), TypeInfo)
		if i == 0 {
			first = n
		}
	}

	if q.Len() != MaxDepth {
		t.Fatalf("expected depth capped at %d, got %d", MaxDepth, q.Len())
	}

	for _, n := range q.Items() {
		if n.ID == first.ID {
			t.Error("oldest notification should have been dropped")
		}
	}
}

func TestQueue_CloseCancelsTimers(t *testing.T) {
	q := NewQueueTTL(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	q.SetListener(func(pushed *Notification, removedID string) {
		if removedID != "" {
			select {
			case fired <- struct{}{}:
			default:
			}
		}
	})

	q.Push("Doomed", "", TypeInfo)
	q.Close()

	select {
	case <-fired:
		t.Error("expiry fired after Close")
	case <-time.After(100 * time.Millisecond):
	}
}
