package radar

import (
	"testing"

	"ukoradar/internal/app/model"
)

func TestVisible_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		ghost    bool
		radius   int
		want     bool
	}{
		{"inside range", 0.5, false, 1, true},
		{"exactly at range boundary", 1.0, false, 1, true},
		{"beyond range", 1.2, false, 1, false},
		{"beyond range regardless of flags", 5.1, false, 5, false},
		{"far entity visible at widest radius", 9.9, false, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.distance, tt.ghost, tt.radius); got != tt.want {
				t.Errorf("Visible(%v, %v, %d) = %v, want %v", tt.distance, tt.ghost, tt.radius, got, tt.want)
			}
		})
	}
}

func TestVisible_GhostHiddenAtAnyDistance(t *testing.T) {
	for _, d := range []float64{0, 0.1, 0.9, 4.9, 9.9} {
		if Visible(d, true, 10) {
			t.Errorf("ghost at distance %v should never be visible", d)
		}
	}
}

func TestSnapshot_ExcludesRatherThanClips(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Juma", Distance: 0.5, Position: model.Position{X: 20, Y: -30}},
		{ID: "u2", Name: "Amani", Distance: 1.2, Position: model.Position{X: -45, Y: 10}},
		{ID: "u3", Name: "Zuri", Distance: 0.8, IsGhost: true, Position: model.Position{X: 10, Y: 50}},
	}
	parties := []model.Party{
		{ID: "p1", Title: "Rooftop Sundowner", Distance: 0.8, Icon: "music"},
		{ID: "p2", Title: "Neon Basement Rave", Distance: 2.5, Icon: "zap"},
	}

	blips := Snapshot(users, parties, 1, 50)

	if len(blips) != 2 {
		t.Fatalf("expected 2 blips at 1km, got %d", len(blips))
	}
	for _, b := range blips {
		if b.ID == "u2" || b.ID == "p2" {
			t.Errorf("out-of-range entity %s leaked into snapshot", b.ID)
		}
		if b.ID == "u3" {
			t.Errorf("ghosting user leaked into snapshot")
		}
	}
}

func TestSnapshot_MarksHypedAndPaid(t *testing.T) {
	parties := []model.Party{
		{ID: "p1", Title: "Quiet One", Distance: 0.5, HypeScore: 50},
		{ID: "p2", Title: "Trending", Distance: 0.5, HypeScore: 60, EntryFee: 500},
	}

	blips := Snapshot(nil, parties, 5, 50)
	if len(blips) != 2 {
		t.Fatalf("expected 2 blips, got %d", len(blips))
	}

	byID := map[string]Blip{}
	for _, b := range blips {
		byID[b.ID] = b
	}

	if byID["p1"].Hyped {
		t.Error("hype score at threshold should not mark the party as hyped")
	}
	if !byID["p2"].Hyped {
		t.Error("hype score above threshold should mark the party as hyped")
	}
	if byID["p1"].Paid {
		t.Error("free party marked as paid")
	}
	if !byID["p2"].Paid {
		t.Error("party with entry fee not marked as paid")
	}
}
