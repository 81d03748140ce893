package model

import (
	"encoding/json"
	"testing"
)

func TestNewPresetVibeRejectsUnknownLabel(t *testing.T) {
	if _, err := NewPresetVibe("Rager"); err != nil {
		t.Fatalf("NewPresetVibe(Rager): %v", err)
	}
	if _, err := NewPresetVibe("Mosh Pit"); err == nil {
		t.Error("NewPresetVibe accepted a label outside the preset set")
	}
}

func TestNewCustomVibeTrimsAndRejectsBlank(t *testing.T) {
	v, err := NewCustomVibe("  Silent Disco  ")
	if err != nil {
		t.Fatalf("NewCustomVibe: %v", err)
	}
	if v.Label() != "Silent Disco" {
		t.Errorf("Label() = %q, want %q", v.Label(), "Silent Disco")
	}
	if v.IsPreset() {
		t.Error("custom vibe reported as preset")
	}

	if _, err := NewCustomVibe("   "); err == nil {
		t.Error("NewCustomVibe accepted whitespace-only text")
	}
}

func TestVibeUnmarshalPrefersPresetVariant(t *testing.T) {
	var preset Vibe
	if err := json.Unmarshal([]byte(`"Chill"`), &preset); err != nil {
		t.Fatalf("unmarshal preset: %v", err)
	}
	if !preset.IsPreset() || preset.Label() != "Chill" {
		t.Errorf("got preset=%v label=%q, want preset Chill", preset.IsPreset(), preset.Label())
	}

	var custom Vibe
	if err := json.Unmarshal([]byte(`"Karaoke Night"`), &custom); err != nil {
		t.Fatalf("unmarshal custom: %v", err)
	}
	if custom.IsPreset() {
		t.Error("free-text label parsed as preset")
	}

	var blank Vibe
	if err := json.Unmarshal([]byte(`""`), &blank); err == nil {
		t.Error("empty label unmarshalled without error")
	}
}

func TestStatusNextCyclesAndWraps(t *testing.T) {
	got := StatusReady
	for i := 0; i < len(Statuses); i++ {
		got = got.Next()
	}
	if got != StatusReady {
		t.Errorf("full cycle from Ready ended at %q", got)
	}

	if next := Status("bogus").Next(); next != StatusReady {
		t.Errorf("Next on unknown status = %q, want %q", next, StatusReady)
	}
}
