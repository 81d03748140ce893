package radar

import "ukoradar/internal/app/model"

// Visible decides whether an entity renders on the viewer's radar at the
// given scan radius. Rules, applied in order:
//
//  1. distance beyond the radius: not visible (and the caller must exclude
//     the entity entirely rather than project it off-canvas, so precise
//     positions of out-of-range entities never leak).
//  2. ghost mode: not visible to other viewers regardless of range.
//  3. otherwise visible.
//
// The predicate is pure and order-independent across entities.
func Visible(distance float64, isGhost bool, radius int) bool {
	if distance > float64(radius) {
		return false
	}
	if isGhost {
		return false
	}
	return true
}

// VisibleUser applies Visible to a user entity.
func VisibleUser(u model.User, radius int) bool {
	return Visible(u.Distance, u.IsGhost, radius)
}

// VisibleParty applies Visible to a party entity. Parties have no ghost flag.
func VisibleParty(p model.Party, radius int) bool {
	return Visible(p.Distance, false, radius)
}

// Blip is a projected, render-ready radar entry.
type Blip struct {
	// ID is the underlying entity's identifier.
	ID string `json:"id"`

	// Kind is "user" or "party".
	Kind string `json:"kind"`

	// Label is the display name shown next to the blip.
	Label string `json:"label"`

	// Icon is the party icon name or the user avatar URL.
	Icon string `json:"icon"`

	// Viewport is the projected position in normalized 0-100 coordinates.
	Viewport model.Position `json:"viewport"`

	// Distance is the unscaled distance in kilometers.
	Distance float64 `json:"distance"`

	// Hyped marks parties whose hype score passed the trending threshold.
	Hyped bool `json:"hyped,omitempty"`

	// Paid marks parties with an entry fee.
	Paid bool `json:"paid,omitempty"`
}

// Snapshot filters and projects all entities for one render pass at the
// given radius. Out-of-range and ghosting entities are absent from the
// result, not merely pushed off-canvas.
func Snapshot(users []model.User, parties []model.Party, radius int, hypeThreshold int) []Blip {
	blips := make([]Blip, 0, len(users)+len(parties))

	for _, u := range users {
		if !VisibleUser(u, radius) {
			continue
		}
		blips = append(blips, Blip{
			ID:       u.ID,
			Kind:     "user",
			Label:    u.Name,
			Icon:     u.Avatar,
			Viewport: Project(u.Position, radius),
			Distance: u.Distance,
		})
	}

	for _, p := range parties {
		if !VisibleParty(p, radius) {
			continue
		}
		blips = append(blips, Blip{
			ID:       p.ID,
			Kind:     "party",
			Label:    p.Title,
			Icon:     p.Icon,
			Viewport: Project(p.Position, radius),
			Distance: p.Distance,
			Hyped:    p.HypeScore > hypeThreshold,
			Paid:     !p.IsFree(),
		})
	}

	return blips
}
