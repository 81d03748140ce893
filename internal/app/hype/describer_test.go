package hype

import (
	"context"
	"strings"
	"testing"
)

func TestGemini_FallbackModeWithoutKey(t *testing.T) {
	g := NewGemini("", "gemini-2.5-flash")

	got := g.Describe(context.Background(), "Rooftop Sundowner", "Chill")

	if got == "" {
		t.Fatal("describer must always return text")
	}
	if !strings.Contains(got, "Chill") || !strings.Contains(got, "Rooftop Sundowner") {
		t.Errorf("fallback should embed title and vibe, got %q", got)
	}
}

func TestFallbackText_Deterministic(t *testing.T) {
	a := FallbackText("VIP Night", "Rager")
	b := FallbackText("VIP Night", "Rager")

	if a != b {
		t.Error("fallback text must be deterministic")
	}
}
