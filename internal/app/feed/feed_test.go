package feed

import (
	"sync"
	"testing"
	"time"

	"ukoradar/internal/app/model"
)

// collector gathers delivered events behind a mutex.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handle(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) byKind(k Kind) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Event
	for _, e := range c.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func TestSimulatedDeliversScheduledEvents(t *testing.T) {
	src := NewSimulatedDelays(Delays{
		StatusFlip: 10 * time.Millisecond,
		PartyDrop:  20 * time.Millisecond,
		GhostCycle: 15 * time.Millisecond,
	})

	var c collector
	cancel := src.Subscribe(c.handle)
	defer cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.byKind(KindUserStatus)) > 0 &&
			len(c.byKind(KindNewParty)) > 0 &&
			len(c.byKind(KindGhostToggle)) >= 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	statusEvents := c.byKind(KindUserStatus)
	if len(statusEvents) != 1 {
		t.Fatalf("status events = %d, want 1 (one-shot)", len(statusEvents))
	}
	if e := statusEvents[0]; e.UserName != StatusFlipUser || e.Status != model.StatusReady {
		t.Errorf("status event = %+v", e)
	}
	if statusEvents[0].Notice.Title != "Squad Update" {
		t.Errorf("status notice = %+v", statusEvents[0].Notice)
	}

	partyEvents := c.byKind(KindNewParty)
	if len(partyEvents) != 1 {
		t.Fatalf("party events = %d, want 1 (one-shot)", len(partyEvents))
	}
	p := partyEvents[0].Party
	if p.ID != "p-sim-1" || p.Title != "Secret Beach Bonfire" || p.Distance != 1.5 {
		t.Errorf("dropped party = %+v", p)
	}

	ghostEvents := c.byKind(KindGhostToggle)
	if len(ghostEvents) < 2 {
		t.Fatalf("ghost toggles = %d, want repeating (>= 2)", len(ghostEvents))
	}
	for _, e := range ghostEvents {
		if e.UserName != GhostCycleUser {
			t.Errorf("ghost toggle user = %q, want %q", e.UserName, GhostCycleUser)
		}
		if e.Notice.Title != "" {
			t.Errorf("ghost toggle must be silent, got notice %+v", e.Notice)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	src := NewSimulatedDelays(Delays{
		StatusFlip: 50 * time.Millisecond,
		PartyDrop:  50 * time.Millisecond,
		GhostCycle: 5 * time.Millisecond,
	})

	var c collector
	cancel := src.Subscribe(c.handle)

	// Let at least one ghost toggle through, then cancel.
	time.Sleep(15 * time.Millisecond)
	cancel()
	cancel() // repeat is a no-op

	// Allow any tick already in flight to drain.
	time.Sleep(10 * time.Millisecond)

	c.mu.Lock()
	countAtCancel := len(c.events)
	c.mu.Unlock()

	time.Sleep(100 * time.Millisecond)

	c.mu.Lock()
	countAfter := len(c.events)
	c.mu.Unlock()

	if countAfter != countAtCancel {
		t.Errorf("events delivered after cancel: %d -> %d", countAtCancel, countAfter)
	}
	if len(c.byKind(KindUserStatus)) != 0 || len(c.byKind(KindNewParty)) != 0 {
		t.Error("one-shot timers fired after cancellation")
	}
}
