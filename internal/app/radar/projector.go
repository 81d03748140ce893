/*
Package radar implements the proximity and visibility model for the radar view.

This file contains the coordinate projector: the pure mapping from an
entity's relative offset and the selected scan radius to a normalized
position inside the bounded circular viewport.
*/
package radar

import "ukoradar/internal/app/model"

const (
	// ViewportCenter is the center coordinate of the normalized 0-100 viewport.
	ViewportCenter = 50.0
)

// SupportedRadii is the fixed set of selectable scan radii in kilometers,
// in ascending order.
var SupportedRadii = []int{1, 5, 10}

// ReferenceRadius is the radius at which offsets map 1:1 into viewport
// units. Fixed at the smallest supported radius, so selecting it shows
// entities at full magnification.
var ReferenceRadius = float64(SupportedRadii[0])

// IsSupportedRadius reports whether r is one of the selectable scan radii.
func IsSupportedRadius(r int) bool {
	for _, supported := range SupportedRadii {
		if r == supported {
			return true
		}
	}
	return false
}

// Project maps an entity's relative offset to its normalized viewport
// position for the given scan radius. Each axis scales independently by
// ReferenceRadius/radius: a smaller radius magnifies near entities toward
// the edges, a larger radius compresses them toward the center.
//
// Out-of-range entities must be filtered with Visible before projection;
// Project itself never clips.
func Project(offset model.Position, radius int) model.Position {
	scale := ReferenceRadius / float64(radius)

	return model.Position{
		X: ViewportCenter + offset.X*scale,
		Y: ViewportCenter + offset.Y*scale,
	}
}
