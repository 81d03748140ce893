package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PresetVibe enumerates the fixed vibe labels offered at party creation.
type PresetVibe string

const (
	VibeRager  PresetVibe = "Rager"
	VibeChill  PresetVibe = "Chill"
	VibeBYOB   PresetVibe = "BYOB"
	VibeDance  PresetVibe = "Dance"
	VibeGaming PresetVibe = "Gaming"
)

// PresetVibes lists every preset label in display order.
var PresetVibes = []PresetVibe{VibeRager, VibeChill, VibeBYOB, VibeDance, VibeGaming}

// Vibe is a tagged union: either one of the preset labels or an arbitrary
// custom string. Validation happens at the Create boundary; downstream code
// only reads the label.
type Vibe struct {
	preset PresetVibe
	custom string
}

// NewPresetVibe builds a Vibe from a preset label. Unknown labels are rejected.
func NewPresetVibe(label string) (Vibe, error) {
	for _, p := range PresetVibes {
		if string(p) == label {
			return Vibe{preset: p}, nil
		}
	}
	return Vibe{}, fmt.Errorf("unknown preset vibe %q", label)
}

// NewCustomVibe builds a Vibe from free text. Whitespace-only text is rejected.
func NewCustomVibe(text string) (Vibe, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Vibe{}, fmt.Errorf("custom vibe cannot be empty")
	}
	return Vibe{custom: trimmed}, nil
}

// IsPreset reports whether the vibe is one of the fixed labels.
func (v Vibe) IsPreset() bool {
	return v.preset != ""
}

// Label returns the display label regardless of variant.
func (v Vibe) Label() string {
	if v.preset != "" {
		return string(v.preset)
	}
	return v.custom
}

// IsZero reports whether the vibe was never set.
func (v Vibe) IsZero() bool {
	return v.preset == "" && v.custom == ""
}

// MarshalJSON renders the vibe as its plain label, matching the wire shape
// clients expect.
func (v Vibe) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Label())
}

// UnmarshalJSON accepts a plain label, preferring the preset variant when
// the text matches one.
func (v *Vibe) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	if preset, err := NewPresetVibe(label); err == nil {
		*v = preset
		return nil
	}

	custom, err := NewCustomVibe(label)
	if err != nil {
		return err
	}
	*v = custom
	return nil
}
