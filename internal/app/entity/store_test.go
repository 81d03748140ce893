package entity

import (
	"testing"

	"ukoradar/internal/app/model"
)

func TestStore_AddPartyPrepends(t *testing.T) {
	s := NewStore(nil, SeedParties())

	s.AddParty(model.Party{ID: "p-new", Title: "Secret Beach Bonfire"})

	parties := s.Parties()
	if parties[0].ID != "p-new" {
		t.Errorf("expected newest party first, got %s", parties[0].ID)
	}
	if len(parties) != 4 {
		t.Errorf("expected 4 parties, got %d", len(parties))
	}
}

func TestStore_BoostHypeCrossing(t *testing.T) {
	s := NewStore(nil, []model.Party{{ID: "p1", Title: "Rooftop", HypeScore: 40}})

	// 40 -> 50: at threshold, not above it.
	_, crossed, ok := s.BoostHype("p1")
	if !ok || crossed {
		t.Errorf("boost to 50 should not cross: crossed=%v ok=%v", crossed, ok)
	}

	// 50 -> 60: crosses exactly once.
	p, crossed, ok := s.BoostHype("p1")
	if !ok || !crossed {
		t.Errorf("boost to 60 should cross: crossed=%v ok=%v", crossed, ok)
	}
	if p.HypeScore != 60 {
		t.Errorf("expected hype 60, got %d", p.HypeScore)
	}

	// 60 -> 70: already above, must not re-fire.
	_, crossed, ok = s.BoostHype("p1")
	if !ok || crossed {
		t.Errorf("boost to 70 must not re-cross: crossed=%v ok=%v", crossed, ok)
	}
}

func TestStore_BoostHypeUnknownParty(t *testing.T) {
	s := NewStore(nil, nil)

	if _, _, ok := s.BoostHype("nope"); ok {
		t.Error("boost on unknown party should report not found")
	}
}

func TestStore_IncrementAttendeesCapacity(t *testing.T) {
	s := NewStore(nil, []model.Party{{ID: "p1", Capacity: 2, Attendees: 1}})

	if _, ok := s.IncrementAttendees("p1"); !ok {
		t.Fatal("increment below capacity should succeed")
	}

	p, ok := s.IncrementAttendees("p1")
	if ok {
		t.Error("increment at capacity should be refused")
	}
	if p.Attendees != 2 {
		t.Errorf("attendees mutated past capacity: %d", p.Attendees)
	}
}

func TestStore_ToggleGhost(t *testing.T) {
	s := NewStore(SeedUsers(), nil)

	ghost, ok := s.ToggleGhost("Zuri")
	if !ok || !ghost {
		t.Fatalf("first toggle should ghost Zuri: ghost=%v ok=%v", ghost, ok)
	}

	ghost, ok = s.ToggleGhost("Zuri")
	if !ok || ghost {
		t.Fatalf("second toggle should unghost Zuri: ghost=%v ok=%v", ghost, ok)
	}

	if _, ok := s.ToggleGhost("Nobody"); ok {
		t.Error("toggle for unknown user should report not found")
	}
}

func TestStore_UpdateUserStatus(t *testing.T) {
	s := NewStore(SeedUsers(), nil)

	if !s.UpdateUserStatus("Kofi", model.StatusReady) {
		t.Fatal("status update for seeded user failed")
	}

	u, ok := s.GetUser("u4")
	if !ok || u.Status != model.StatusReady {
		t.Errorf("expected Kofi ready, got %v", u.Status)
	}

	if s.UpdateUserStatus("Nobody", model.StatusOffline) {
		t.Error("status update for unknown user should report false")
	}
}

func TestStore_CopiesAreIsolated(t *testing.T) {
	s := NewStore(SeedUsers(), SeedParties())

	users := s.Users()
	users[0].Name = "Mutated"

	fresh := s.Users()
	if fresh[0].Name == "Mutated" {
		t.Error("store returned a shared slice; mutation leaked")
	}
}
