package session

import (
	"testing"
	"time"

	"ukoradar/internal/app/feed"
	"ukoradar/internal/app/model"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/pkg/errs"
)

// quietSharer is a no-op share collaborator for tests.
type quietSharer struct{}

func (quietSharer) Share(shareURL, title, text string) error { return nil }
func (quietSharer) Clipboard(shareURL string) error          { return nil }

func slowFeed() feed.Source {
	return feed.NewSimulatedDelays(feed.Delays{
		StatusFlip: time.Hour,
		PartyDrop:  time.Hour,
		GhostCycle: time.Hour,
	})
}

func fastFeed() feed.Source {
	return feed.NewSimulatedDelays(feed.Delays{
		StatusFlip: 10 * time.Millisecond,
		PartyDrop:  15 * time.Millisecond,
		GhostCycle: 20 * time.Millisecond,
	})
}

func newTestSession(t *testing.T, src feed.Source) *Session {
	t.Helper()

	s := New("prof-1", "Me", payment.NewSimulatedDelay(time.Millisecond), src, quietSharer{}, "https://ukoradar.test")
	t.Cleanup(s.Close)
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t, slowFeed())

	if s.Radius() != DefaultRadius {
		t.Errorf("radius = %d, want %d", s.Radius(), DefaultRadius)
	}
	if s.Status() != model.StatusReady {
		t.Errorf("status = %q, want %q", s.Status(), model.StatusReady)
	}
	if s.GhostMode() {
		t.Error("fresh session should not be in ghost mode")
	}
	if got := len(s.Store.Users()); got != 4 {
		t.Errorf("seeded users = %d, want 4", got)
	}
	if got := len(s.Store.Parties()); got != 3 {
		t.Errorf("seeded parties = %d, want 3", got)
	}
}

func TestSetRadiusValidation(t *testing.T) {
	s := newTestSession(t, slowFeed())

	if err := s.SetRadius(1); err != nil {
		t.Fatalf("SetRadius(1): %v", err)
	}
	if s.Radius() != 1 {
		t.Errorf("radius = %d, want 1", s.Radius())
	}

	if err := s.SetRadius(3); err == nil || err.Code != errs.ErrRadiusUnsupported {
		t.Errorf("SetRadius(3): got %v, want code %d", err, errs.ErrRadiusUnsupported)
	}
	if s.Radius() != 1 {
		t.Errorf("rejected radius mutated state: %d", s.Radius())
	}
}

func TestCycleStatusRotation(t *testing.T) {
	s := newTestSession(t, slowFeed())

	want := []model.Status{
		model.StatusChilling,
		model.StatusHosting,
		model.StatusOffline,
		model.StatusReady,
	}
	for i, w := range want {
		if got := s.CycleStatus(); got != w {
			t.Fatalf("cycle %d = %q, want %q", i, got, w)
		}
	}
}

func TestToggleGhost(t *testing.T) {
	s := newTestSession(t, slowFeed())

	if !s.ToggleGhost() {
		t.Fatal("first toggle should enable ghost mode")
	}
	if s.ToggleGhost() {
		t.Fatal("second toggle should disable ghost mode")
	}
}

func TestFeedEventsAnimateSession(t *testing.T) {
	s := newTestSession(t, fastFeed())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(s.Store.Parties()) == 4 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := len(s.Store.Parties()); got != 4 {
		t.Fatalf("parties after drop = %d, want 4", got)
	}

	// Kofi flipped to Ready by the one-shot status event.
	var kofi *model.User
	for _, u := range s.Store.Users() {
		if u.Name == feed.StatusFlipUser {
			uu := u
			kofi = &uu
		}
	}
	if kofi == nil {
		t.Fatal("seeded user missing")
	}
	if kofi.Status != model.StatusReady {
		t.Errorf("status = %q, want %q", kofi.Status, model.StatusReady)
	}

	// Both noticed events pushed toasts.
	titles := make(map[string]bool)
	for _, n := range s.Queue.Items() {
		titles[n.Title] = true
	}
	if !titles["Squad Update"] || !titles["New Drop Detected 📍"] {
		t.Errorf("notifications = %v", titles)
	}
}

func TestCloseStopsFeedMutations(t *testing.T) {
	s := New("prof-1", "Me", payment.NewSimulatedDelay(time.Millisecond), feed.NewSimulatedDelays(feed.Delays{
		StatusFlip: 30 * time.Millisecond,
		PartyDrop:  30 * time.Millisecond,
		GhostCycle: 10 * time.Millisecond,
	}), quietSharer{}, "https://ukoradar.test")

	s.Close()
	s.Close() // repeat is a no-op

	time.Sleep(60 * time.Millisecond)

	if got := len(s.Store.Parties()); got != 3 {
		t.Errorf("closed session mutated: %d parties", got)
	}
}

func TestRadarSnapshotUsesSessionRadius(t *testing.T) {
	s := newTestSession(t, slowFeed())

	// At 5km every seeded user and party is in range and un-ghosted.
	if got := len(s.RadarSnapshot()); got != 7 {
		t.Fatalf("blips at 5km = %d, want 7", got)
	}

	// At 1km: users 0.5, 0.3, 0.8 and party 0.8 remain.
	if err := s.SetRadius(1); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}
	if got := len(s.RadarSnapshot()); got != 4 {
		t.Errorf("blips at 1km = %d, want 4", got)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(slowFeed(), quietSharer{}, "https://ukoradar.test", func() payment.Processor {
		return payment.NewSimulatedDelay(time.Millisecond)
	})
	defer r.Shutdown()

	s1 := r.Open("prof-1", "Juma")
	s2 := r.Open("prof-1", "Juma")
	if s1 != s2 {
		t.Error("Open created a second session for the same profile")
	}

	other := r.Open("prof-2", "Amani")
	if other == s1 {
		t.Error("profiles share a session")
	}

	// Sessions are isolated stores.
	other.Store.AddParty(model.Party{ID: "p-x", Title: "Isolated"})
	if got := len(s1.Store.Parties()); got != 3 {
		t.Errorf("mutation leaked across sessions: %d parties", got)
	}

	got, err := r.Get("prof-1")
	if err != nil || got != s1 {
		t.Errorf("Get = (%v, %v), want the open session", got, err)
	}

	r.Close("prof-1")
	if _, err := r.Get("prof-1"); err == nil || err.Code != errs.ErrSessionNotFound {
		t.Errorf("Get after Close: got %v, want code %d", err, errs.ErrSessionNotFound)
	}
}
