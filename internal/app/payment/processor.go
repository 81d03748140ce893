/*
Package payment simulates the mobile-money collaborator gating paid party entry.

There is no real transaction: a request validates the phone number, waits a
fixed STK-push delay, and then reports success. Every request is keyed by a
token; cancelling or superseding a request invalidates its token so a stale
confirmation can never apply an out-of-date transition.
*/
package payment

import (
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

const (
	// DefaultConfirmDelay mimics the latency of an STK push round trip.
	DefaultConfirmDelay = 2500 * time.Millisecond

	// MinPhoneDigits is the minimum digit count of an accepted phone number.
	MinPhoneDigits = 9
)

var nonDigits = regexp.MustCompile(`\D`)

// Result reports the outcome of a payment request.
type Result struct {
	Token   string
	PartyID string
	Amount  int
	OK      bool
}

// Processor is the payment collaborator contract. The simulated processor
// and any future real rail are interchangeable behind it.
type Processor interface {
	// Begin starts a payment request and returns its token. done is called
	// exactly once when the request settles, and never after the token has
	// been invalidated.
	Begin(partyID, partyTitle string, amount int, phone string, done func(Result)) (string, *errs.CustomError)

	// Cancel invalidates a pending request. A settled or unknown token is
	// a no-op.
	Cancel(token string)

	// Close invalidates every pending request. Used on session teardown.
	Close()
}

// pendingRequest tracks one in-flight simulated payment.
type pendingRequest struct {
	timer *time.Timer
	done  func(Result)
}

// Simulated implements Processor with a fixed-delay timer per request.
type Simulated struct {
	mu      sync.Mutex
	pending map[string]*pendingRequest
	delay   time.Duration

	// byParty maps a party id to its latest token. A new request for the
	// same party supersedes and invalidates the previous one.
	byParty map[string]string

	logger zerolog.Logger
}

// NewSimulated creates a Simulated processor with the default confirm delay.
func NewSimulated() *Simulated {
	return NewSimulatedDelay(DefaultConfirmDelay)
}

// NewSimulatedDelay creates a Simulated processor with a custom delay.
// Tests shrink it.
func NewSimulatedDelay(delay time.Duration) *Simulated {
	return &Simulated{
		pending: make(map[string]*pendingRequest),
		byParty: make(map[string]string),
		delay:   delay,
		logger:  logx.Logger().With().Str("component", "PaymentProcessor").Logger(),
	}
}

// ValidPhone checks that the input carries at least MinPhoneDigits digits.
func ValidPhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= MinPhoneDigits
}

// Begin implements Processor.
func (s *Simulated) Begin(partyID, partyTitle string, amount int, phone string, done func(Result)) (string, *errs.CustomError) {
	if !ValidPhone(phone) {
		return "", errs.NewError(errs.ErrPhoneInvalid)
	}

	token := randx.EntityID()

	s.mu.Lock()
	// Supersede any earlier request for the same party.
	if prev, ok := s.byParty[partyID]; ok {
		s.cancelLocked(prev)
	}
	s.byParty[partyID] = token

	req := &pendingRequest{done: done}
	req.timer = time.AfterFunc(s.delay, func() {
		s.settle(token, partyID, amount)
	})
	s.pending[token] = req
	s.mu.Unlock()

	s.logger.Info().
		Str("party_id", partyID).
		Str("party_title", partyTitle).
		Int("amount", amount).
		Msg("Simulated STK push dispatched.")

	return token, nil
}

// settle fires the done callback if the token is still live.
func (s *Simulated) settle(token, partyID string, amount int) {
	s.mu.Lock()
	req, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
		if s.byParty[partyID] == token {
			delete(s.byParty, partyID)
		}
	}
	s.mu.Unlock()

	if !ok {
		// Cancelled or superseded before the delay elapsed.
		return
	}

	req.done(Result{Token: token, PartyID: partyID, Amount: amount, OK: true})
}

// Cancel implements Processor.
func (s *Simulated) Cancel(token string) {
	s.mu.Lock()
	s.cancelLocked(token)
	s.mu.Unlock()
}

// cancelLocked stops and forgets a pending request. Caller holds the lock.
func (s *Simulated) cancelLocked(token string) {
	if req, ok := s.pending[token]; ok {
		req.timer.Stop()
		delete(s.pending, token)
		s.logger.Debug().Str("token", token).Msg("Payment request invalidated.")
	}
}

// Close implements Processor.
func (s *Simulated) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, req := range s.pending {
		req.timer.Stop()
		delete(s.pending, token)
	}
	s.byParty = make(map[string]string)
}
