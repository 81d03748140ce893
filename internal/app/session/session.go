/*
Package session owns the per-viewer state of the radar demo.

Every signed-in viewer gets one Session holding their entity store,
notification queue, conversation router, party manager, and booking
service, animated by a feed subscription. Sessions are isolated: one
viewer's mutations never leak into another's radar.
*/
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/booking"
	"ukoradar/internal/app/chat"
	"ukoradar/internal/app/entity"
	"ukoradar/internal/app/feed"
	"ukoradar/internal/app/model"
	"ukoradar/internal/app/notify"
	"ukoradar/internal/app/party"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/app/radar"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

// DefaultRadius is the scan radius a fresh session starts with.
const DefaultRadius = 5

// Session is one viewer's live application state.
type Session struct {
	ID         string
	ProfileID  string
	ViewerName string

	Store    *entity.Store
	Queue    *notify.Queue
	Router   *chat.Router
	Parties  *party.Manager
	Bookings *booking.Service

	payments   payment.Processor
	cancelFeed func()

	mu       sync.Mutex
	status   model.Status
	ghost    bool
	radius   int
	lastSeen time.Time
	closed   bool

	logger zerolog.Logger
}

// New builds a fully wired Session for a viewer and subscribes it to the
// event source.
func New(profileID, viewerName string, payments payment.Processor, src feed.Source, sharer party.Sharer, inviteBase string) *Session {
	s := &Session{
		ID:         randx.EntityID(),
		ProfileID:  profileID,
		ViewerName: viewerName,
		Store:      entity.NewStore(entity.SeedUsers(), entity.SeedParties()),
		Queue:      notify.NewQueue(),
		Router:     chat.NewRouter(chat.SeedMessages()),
		payments:   payments,
		status:     model.StatusReady,
		radius:     DefaultRadius,
		lastSeen:   time.Now(),
	}
	s.logger = logx.Logger().With().Str("component", "Session").Str("session_id", s.ID).Logger()

	s.Parties = party.NewManager(s.Store, s.Queue, s.Router, payments, sharer, entity.ViewerID, viewerName, inviteBase)
	s.Bookings = booking.NewService(payments, s.Queue)

	s.cancelFeed = src.Subscribe(s.applyEvent)

	s.logger.Info().Str("profile_id", profileID).Msg("Session started.")

	return s
}

// applyEvent folds one feed event into the session's stores.
func (s *Session) applyEvent(e feed.Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	switch e.Kind {
	case feed.KindUserStatus:
		s.Store.UpdateUserStatus(e.UserName, e.Status)
	case feed.KindNewParty:
		s.Store.AddParty(e.Party)
	case feed.KindGhostToggle:
		s.Store.ToggleGhost(e.UserName)
	}

	if e.Notice.Title != "" {
		s.Queue.Push(e.Notice.Title, e.Notice.Message, e.Notice.Type)
	}

	s.Touch()
}

// Touch records viewer activity for idle expiry.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the most recent activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Status returns the viewer's current status.
func (s *Session) Status() model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// CycleStatus advances the viewer's status through the fixed rotation and
// returns the new value.
func (s *Session) CycleStatus() model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = s.status.Next()
	return s.status
}

// GhostMode reports whether the viewer is hidden from others.
func (s *Session) GhostMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ghost
}

// ToggleGhost flips the viewer's ghost flag and returns the new value.
func (s *Session) ToggleGhost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ghost = !s.ghost
	return s.ghost
}

// Radius returns the selected scan radius.
func (s *Session) Radius() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.radius
}

// SetRadius selects a scan radius from the supported set.
func (s *Session) SetRadius(r int) *errs.CustomError {
	if !radar.IsSupportedRadius(r) {
		return errs.NewError(errs.ErrRadiusUnsupported)
	}

	s.mu.Lock()
	s.radius = r
	s.mu.Unlock()

	return nil
}

// RadarSnapshot projects the session's entities at its current radius.
func (s *Session) RadarSnapshot() []radar.Blip {
	return radar.Snapshot(s.Store.Users(), s.Store.Parties(), s.Radius(), entity.TrendingThreshold)
}

// Close tears the session down: the feed subscription is cancelled first so
// no timer can mutate a closed session, then pending payments and
// notification timers are released.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancelFeed()
	s.payments.Close()
	s.Queue.Close()

	s.logger.Info().Msg("Session closed.")
}
