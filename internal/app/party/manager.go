/*
Package party implements the viewer-facing party lifecycle.

The Manager mediates every user-initiated party transition: create, join,
payment gating, hype boosts, invites, and the vibe check. It mutates the
entity store and notification queue only through their operations.
*/
package party

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/chat"
	"ukoradar/internal/app/entity"
	"ukoradar/internal/app/model"
	"ukoradar/internal/app/notify"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

const (
	// DefaultDescription fills an empty party description at Create.
	DefaultDescription = "Come through!"

	// DefaultCapacity applies when a Create request leaves capacity unset.
	DefaultCapacity = 50

	// DefaultIcon is the radar pin used when no icon is chosen.
	DefaultIcon = "pin"
)

// Manager coordinates the viewer's party lifecycle within one session.
type Manager struct {
	mu sync.Mutex

	store    *entity.Store
	queue    *notify.Queue
	router   *chat.Router
	payments payment.Processor
	sharer   Sharer

	viewerID   string
	viewerName string
	inviteBase string

	// states holds the viewer's lifecycle state per party id. Absent
	// entries mean Broadcasting (a live party the viewer has not touched).
	states map[string]State

	// pendingTokens maps a party id to its live payment token.
	pendingTokens map[string]string

	// activePartyID is the party whose conversation the viewer is in.
	activePartyID string

	// ratings is the append-only vibe check log.
	ratings []Rating

	// consumedInvites remembers processed deep-link invites so a reload
	// cannot re-trigger one.
	consumedInvites map[string]bool

	logger zerolog.Logger
}

// NewManager wires a Manager over the session's stores and collaborators.
func NewManager(
	store *entity.Store,
	queue *notify.Queue,
	router *chat.Router,
	payments payment.Processor,
	sharer Sharer,
	viewerID, viewerName, inviteBase string,
) *Manager {
	return &Manager{
		store:         store,
		queue:         queue,
		router:        router,
		payments:      payments,
		sharer:        sharer,
		viewerID:      viewerID,
		viewerName:    viewerName,
		inviteBase:    inviteBase,
		states:        make(map[string]State),
		pendingTokens: make(map[string]string),
		logger:        logx.Logger().With().Str("component", "PartyManager").Logger(),
	}
}

// CreateInput carries the Create form fields. Zero values get defaults.
type CreateInput struct {
	Title       string
	Description string
	Vibe        model.Vibe
	StartTime   string
	Capacity    int
	EntryFee    int
	Icon        string
	CoverImage  string
}

// Create validates the input, appends the new party, and emits the
// broadcast notification. The creator is host and sole initial attendee;
// a free party also opens its conversation immediately.
func (m *Manager) Create(in CreateInput) (model.Party, *errs.CustomError) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Party{}, errs.NewError(errs.ErrPartyTitleRequired)
	}

	vibe := in.Vibe
	if vibe.IsZero() {
		vibe, _ = model.NewPresetVibe(string(model.VibeChill))
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = DefaultDescription
	}

	capacity := in.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	startTime := in.StartTime
	if startTime == "" {
		startTime = "Now"
	}

	icon := in.Icon
	if icon == "" {
		icon = DefaultIcon
	}

	p := model.Party{
		ID:          randx.EntityID(),
		HostID:      m.viewerID,
		Title:       strings.TrimSpace(in.Title),
		Description: description,
		Vibe:        vibe,
		StartTime:   startTime,
		Capacity:    capacity,
		Attendees:   1,
		Position:    model.Position{X: 0, Y: 0}, // host is the radar center
		Distance:    0,
		CoverImage:  in.CoverImage,
		Icon:        icon,
		EntryFee:    in.EntryFee,
	}

	m.store.AddParty(p)

	// A free party drops the creator straight into its conversation. A paid
	// one broadcasts only; even the host goes through the payment gate.
	if p.IsFree() {
		m.mu.Lock()
		m.states[p.ID] = StateJoined
		m.activePartyID = p.ID
		m.mu.Unlock()

		m.router.Open(p.ID, chat.ModeParty)
	} else {
		m.mu.Lock()
		m.states[p.ID] = StateBroadcasting
		m.mu.Unlock()
	}

	m.queue.Push("Party Live! 📡", "Your beacon has been broadcast to nearby users.", notify.TypeSuccess)

	m.logger.Info().Str("party_id", p.ID).Str("title", p.Title).Msg("Party created and broadcasting.")

	return p, nil
}

// Join moves the viewer toward a party's conversation. Free parties join
// directly; paid parties enter PaymentPending and stay outside the
// conversation until the payment settles.
func (m *Manager) Join(partyID string) (State, *errs.CustomError) {
	p, ok := m.store.GetParty(partyID)
	if !ok {
		return "", errs.NewError(errs.ErrPartyNotFound)
	}

	m.mu.Lock()
	if m.states[partyID] == StateJoined {
		m.activePartyID = partyID
		m.mu.Unlock()
		m.router.Open(partyID, chat.ModeParty)
		return StateJoined, nil
	}
	m.mu.Unlock()

	if !p.IsFree() {
		m.mu.Lock()
		m.states[partyID] = StatePaymentPending
		m.mu.Unlock()
		return StatePaymentPending, nil
	}

	if _, ok := m.store.IncrementAttendees(partyID); !ok {
		return "", errs.NewError(errs.ErrPartyFull)
	}

	m.mu.Lock()
	m.states[partyID] = StateJoined
	m.activePartyID = partyID
	m.mu.Unlock()

	m.router.Open(partyID, chat.ModeParty)

	return StateJoined, nil
}

// Pay begins the payment flow for a party in PaymentPending. A repeat call
// supersedes the prior request; its stale confirmation can no longer apply.
func (m *Manager) Pay(partyID, phone string) (string, *errs.CustomError) {
	p, ok := m.store.GetParty(partyID)
	if !ok {
		return "", errs.NewError(errs.ErrPartyNotFound)
	}

	m.mu.Lock()
	state := m.states[partyID]
	m.mu.Unlock()

	if state != StatePaymentPending {
		return "", errs.NewError(errs.ErrPaymentNotPending)
	}

	token, err := m.payments.Begin(p.ID, p.Title, p.EntryFee, phone, m.onPaymentSettled)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.pendingTokens[partyID] = token
	m.mu.Unlock()

	return token, nil
}

// onPaymentSettled applies the Joined transition when a confirmation
// arrives for a token that is still current.
func (m *Manager) onPaymentSettled(r payment.Result) {
	m.mu.Lock()
	current, ok := m.pendingTokens[r.PartyID]
	if !ok || current != r.Token {
		m.mu.Unlock()
		m.logger.Warn().Str("party_id", r.PartyID).Msg("Stale payment confirmation dropped.")
		return
	}
	delete(m.pendingTokens, r.PartyID)
	m.mu.Unlock()

	if !r.OK {
		m.queue.Push("Payment Failed", "The transaction did not go through. Try again.", notify.TypeAlert)
		return
	}

	if _, ok := m.store.IncrementAttendees(r.PartyID); !ok {
		m.queue.Push("Party Full", "The party filled up before your payment cleared.", notify.TypeAlert)
		m.mu.Lock()
		m.states[r.PartyID] = StateBroadcasting
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.states[r.PartyID] = StateJoined
	m.activePartyID = r.PartyID
	m.mu.Unlock()

	m.router.Open(r.PartyID, chat.ModeParty)
	m.queue.Push("Payment Successful!", "Access granted. Enjoy the vibe.", notify.TypeSuccess)
}

// CancelPayment abandons a pending payment. The party drops back to
// Broadcasting and the outstanding token is invalidated. Cancelling when
// no payment is pending reports a stale token.
func (m *Manager) CancelPayment(partyID string) *errs.CustomError {
	m.mu.Lock()
	token, ok := m.pendingTokens[partyID]
	if ok {
		delete(m.pendingTokens, partyID)
	}
	if m.states[partyID] == StatePaymentPending {
		m.states[partyID] = StateBroadcasting
	}
	m.mu.Unlock()

	if !ok {
		return errs.NewError(errs.ErrPaymentTokenStale)
	}

	m.payments.Cancel(token)
	return nil
}

// Boost increments the party's hype score by one quantum. Crossing the
// trending threshold fires the one-time trending notification.
func (m *Manager) Boost(partyID string) (model.Party, *errs.CustomError) {
	p, crossed, ok := m.store.BoostHype(partyID)
	if !ok {
		return model.Party{}, errs.NewError(errs.ErrPartyNotFound)
	}

	if crossed {
		m.queue.Push("Trending 🔥", fmt.Sprintf("%s is blowing up! The squad is gathering.", p.Title), notify.TypeParty)
	}

	return p, nil
}

// SendActive sends a message as the viewer into the open conversation.
func (m *Manager) SendActive(text string) (chat.Message, *errs.CustomError) {
	return m.router.Send(m.viewerID, m.viewerName, text)
}

// BeginVibeCheck moves a joined party into RatingPending, prompting the
// vibe check. Parties the viewer is not inside are left alone.
func (m *Manager) BeginVibeCheck(partyID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.states[partyID] != StateJoined {
		return false
	}
	m.states[partyID] = StateRatingPending
	return true
}

// Rate records the vibe check scores, closes the conversation, and returns
// the viewer to discovery. Scores must each be 1-5. Ratings do not mutate
// the party record.
func (m *Manager) Rate(partyID string, hypeScore, safetyScore int) *errs.CustomError {
	if hypeScore < 1 || hypeScore > 5 || safetyScore < 1 || safetyScore > 5 {
		return errs.NewError(errs.ErrRatingOutOfRange)
	}

	if _, ok := m.store.GetParty(partyID); !ok {
		return errs.NewError(errs.ErrPartyNotFound)
	}

	m.mu.Lock()
	m.states[partyID] = StateRated
	m.ratings = append(m.ratings, Rating{
		PartyID: partyID,
		Hype:    hypeScore,
		Safety:  safetyScore,
		RatedAt: timeNow(),
	})
	if m.activePartyID == partyID {
		m.activePartyID = ""
	}
	m.mu.Unlock()

	m.router.Back()
	m.queue.Push("Vibe Check Complete", fmt.Sprintf("You rated: %d🔥 %d🛡️", hypeScore, safetyScore), notify.TypeSuccess)

	return nil
}

// StateOf returns the viewer's lifecycle state for a party. Untouched live
// parties report Broadcasting.
func (m *Manager) StateOf(partyID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.states[partyID]; ok {
		return s
	}
	return StateBroadcasting
}

// ActivePartyID returns the party whose conversation is open, or "".
func (m *Manager) ActivePartyID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.activePartyID
}

// Ratings returns a copy of the vibe check log.
func (m *Manager) Ratings() []Rating {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Rating(nil), m.ratings...)
}
