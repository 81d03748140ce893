/*
Package party implements the viewer-facing party lifecycle.

This file defines the lifecycle states and the viewer's rating record.
*/
package party

import "time"

// State tracks the viewer's relationship with a party.
//
// Draft -> Broadcasting -> (PaymentPending -> Joined | Joined directly when
// free) -> RatingPending -> Rated.
type State string

const (
	// StateDraft is a party still being composed, before Create.
	StateDraft State = "draft"

	// StateBroadcasting is a live party the viewer has not joined.
	StateBroadcasting State = "broadcasting"

	// StatePaymentPending blocks entry on a paid party until the payment
	// collaborator confirms.
	StatePaymentPending State = "payment_pending"

	// StateJoined means the viewer is inside the party's conversation.
	StateJoined State = "joined"

	// StateRatingPending means the vibe check is showing.
	StateRatingPending State = "rating_pending"

	// StateRated is terminal; the viewer has submitted scores.
	StateRated State = "rated"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// Rating is one submitted vibe check. Ratings are recorded append-only and
// are deliberately not folded back into the party record.
type Rating struct {
	PartyID string    `json:"partyId"`
	Hype    int       `json:"hype"`
	Safety  int       `json:"safety"`
	RatedAt time.Time `json:"ratedAt"`
}
