package radar

import (
	"math"
	"testing"

	"ukoradar/internal/app/model"
)

func TestProject_CenterStaysCentered(t *testing.T) {
	for _, r := range SupportedRadii {
		pos := Project(model.Position{X: 0, Y: 0}, r)
		if pos.X != ViewportCenter || pos.Y != ViewportCenter {
			t.Errorf("radius %d: origin projected to (%v, %v), want center", r, pos.X, pos.Y)
		}
	}
}

func TestProject_MonotonicZoom(t *testing.T) {
	// Decreasing the radius must strictly increase the projected offset
	// magnitude for a fixed entity offset.
	offset := model.Position{X: 20, Y: -30}

	prevMagnitude := -1.0
	for i := len(SupportedRadii) - 1; i >= 0; i-- {
		r := SupportedRadii[i]
		pos := Project(offset, r)
		dx := pos.X - ViewportCenter
		dy := pos.Y - ViewportCenter
		magnitude := math.Hypot(dx, dy)

		if magnitude <= prevMagnitude {
			t.Errorf("radius %d: magnitude %v not greater than %v at larger radius", r, magnitude, prevMagnitude)
		}
		prevMagnitude = magnitude
	}
}

func TestProject_IndependentAxes(t *testing.T) {
	tests := []struct {
		name   string
		offset model.Position
		radius int
		wantX  float64
		wantY  float64
	}{
		{"reference radius maps one to one", model.Position{X: 10, Y: -10}, 1, 60, 40},
		{"larger radius compresses", model.Position{X: 10, Y: -10}, 5, 52, 48},
		{"largest radius compresses further", model.Position{X: 10, Y: -10}, 10, 51, 49},
		{"positive y moves down", model.Position{X: 0, Y: 50}, 5, 50, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.offset, tt.radius)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Project(%v, %d) = (%v, %v), want (%v, %v)",
					tt.offset, tt.radius, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIsSupportedRadius(t *testing.T) {
	for _, r := range SupportedRadii {
		if !IsSupportedRadius(r) {
			t.Errorf("expected radius %d to be supported", r)
		}
	}

	for _, r := range []int{0, 2, 3, 7, 11, -1} {
		if IsSupportedRadius(r) {
			t.Errorf("expected radius %d to be unsupported", r)
		}
	}
}
