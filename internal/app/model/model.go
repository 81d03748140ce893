/*
Package model contains the core data structures shared across the radar system.

It defines the User and Party entities shown on the radar, their position
and status attributes, and the music track reference a party may carry.
*/
package model

// Position is an entity's relative (x, y) offset from the viewer's origin,
// in arbitrary signed sub-kilometer units. (0, 0) is the viewer.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Status enumerates a user's presence on the radar.
type Status string

const (
	StatusReady    Status = "Ready to Party"
	StatusChilling Status = "Chilling"
	StatusHosting  Status = "Hosting"
	StatusOffline  Status = "Offline"
)

// Statuses lists the cycle order used when the viewer toggles their own status.
var Statuses = []Status{StatusReady, StatusChilling, StatusHosting, StatusOffline}

// Next returns the status following s in the cycle, wrapping around.
func (s Status) Next() Status {
	for i, cur := range Statuses {
		if cur == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusReady
}

// User represents a nearby squad member on the radar.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Name is the user's display handle.
	Name string `json:"name"`

	// Avatar is the URL of the user's avatar image.
	Avatar string `json:"avatar"`

	// Status is the user's current presence.
	Status Status `json:"status"`

	// Position is the relative offset from the viewer's origin.
	Position Position `json:"position"`

	// Distance is the straight-line distance from the viewer in kilometers.
	Distance float64 `json:"distance"`

	// IsGhost suppresses the user's visibility on other viewers' radars.
	IsGhost bool `json:"isGhost,omitempty"`

	// Badges is an optional set of earned badge labels.
	Badges []string `json:"badges,omitempty"`
}

// MusicTrack is the track a party is currently playing.
type MusicTrack struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	CoverURL string `json:"coverUrl"`
}

// Party represents an informal gathering broadcast on the radar.
type Party struct {
	// ID is the unique identifier for the party.
	ID string `json:"id"`

	// HostID references the hosting User.
	HostID string `json:"hostId"`

	// Title is the party's display name. Required at creation.
	Title string `json:"title"`

	// Description is free text shown on the party card.
	Description string `json:"description"`

	// Vibe is the party's thematic label, a preset or a custom string.
	Vibe Vibe `json:"vibe"`

	// StartTime is a display label, not a parsed timestamp.
	StartTime string `json:"startTime"`

	// Capacity is the maximum number of attendees.
	Capacity int `json:"capacity"`

	// Attendees is the current attendee count. Never exceeds Capacity;
	// Join enforces the bound.
	Attendees int `json:"attendees"`

	// Position is the relative offset from the viewer's origin.
	Position Position `json:"position"`

	// Distance is the straight-line distance from the viewer in kilometers.
	Distance float64 `json:"distance"`

	// CoverImage is the URL of the party's cover image.
	CoverImage string `json:"coverImage"`

	// Icon is either a named radar icon (music, drink, game, fire, zap,
	// headphones, pin) or an embedded image URL / data payload.
	Icon string `json:"icon"`

	// EntryFee gates joining behind a payment when greater than zero.
	EntryFee int `json:"entryFee,omitempty"`

	// HostTrustScore is the host's 0-100 trust percentage.
	HostTrustScore int `json:"hostTrustScore,omitempty"`

	// HypeScore is the monotonically increasing boost counter.
	HypeScore int `json:"hypeScore,omitempty"`

	// MusicTrack is the optional track the party is playing.
	MusicTrack *MusicTrack `json:"musicTrack,omitempty"`
}

// IsFree reports whether the party can be joined without a payment step.
func (p *Party) IsFree() bool {
	return p.EntryFee <= 0
}
