/*
Package session owns the per-viewer state of the radar demo.

This file defines the Registry, which serves as the central manager for all
live sessions. It is responsible for creating, tracking, retrieving, and
expiring Session instances.
*/
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/feed"
	"ukoradar/internal/app/party"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
)

const (
	// IdleExpiry is how long an untouched session survives.
	IdleExpiry = 30 * time.Minute

	// sweepInterval is how often the registry scans for idle sessions.
	sweepInterval = 1 * time.Minute
)

// Registry coordinates all live viewer sessions.
type Registry struct {
	// sessions stores a map of all Session instances, keyed by profile id.
	sessions map[string]*Session

	// mu protects concurrent access to the sessions map.
	mu sync.RWMutex

	// stop signals the sweep loop to exit.
	stop chan struct{}

	// wg is used to wait for the sweep loop to finish during shutdown.
	wg sync.WaitGroup

	src        feed.Source
	sharer     party.Sharer
	inviteBase string

	// newProcessor builds one payment processor per session.
	newProcessor func() payment.Processor

	logger zerolog.Logger
}

// NewRegistry constructs a Registry and starts its idle sweep loop.
func NewRegistry(src feed.Source, sharer party.Sharer, inviteBase string, newProcessor func() payment.Processor) *Registry {
	r := &Registry{
		sessions:     make(map[string]*Session),
		stop:         make(chan struct{}),
		src:          src,
		sharer:       sharer,
		inviteBase:   inviteBase,
		newProcessor: newProcessor,
		logger:       logx.Logger().With().Str("component", "SessionRegistry").Logger(),
	}

	r.wg.Add(1)
	go r.runSweepLoop()

	return r
}

// runSweepLoop periodically closes sessions idle past IdleExpiry.
func (r *Registry) runSweepLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	r.logger.Info().Msg("Idle sweep loop started.")

	for {
		select {
		case <-r.stop:
			r.logger.Info().Msg("Idle sweep loop stopped.")
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

// sweep closes and removes every session idle past IdleExpiry.
func (r *Registry) sweep() {
	cutoff := time.Now().Add(-IdleExpiry)

	r.mu.Lock()
	var expired []*Session
	for profileID, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, profileID)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		r.logger.Info().Str("session_id", s.ID).Msg("Idle session expired.")
	}
}

// Open returns the viewer's session, creating one on first touch. A fresh
// session gets its own seeded stores and feed subscription.
func (r *Registry) Open(profileID, viewerName string) *Session {
	r.mu.RLock()
	s, ok := r.sessions[profileID]
	r.mu.RUnlock()
	if ok {
		s.Touch()
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[profileID]; ok {
		s.Touch()
		return s
	}

	s = New(profileID, viewerName, r.newProcessor(), r.src, r.sharer, r.inviteBase)
	r.sessions[profileID] = s

	r.logger.Info().Str("profile_id", profileID).Str("session_id", s.ID).Msg("New session created.")

	return s
}

// Get retrieves the viewer's session without creating one.
func (r *Registry) Get(profileID string) (*Session, *errs.CustomError) {
	r.mu.RLock()
	s, ok := r.sessions[profileID]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewError(errs.ErrSessionNotFound)
	}

	s.Touch()
	return s, nil
}

// Close tears down and removes the viewer's session. Used on logout.
func (r *Registry) Close(profileID string) {
	r.mu.Lock()
	s, ok := r.sessions[profileID]
	if ok {
		delete(r.sessions, profileID)
	}
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Shutdown gracefully closes every session and stops the sweep loop.
func (r *Registry) Shutdown() {
	r.logger.Info().Msg("Shutting down session registry...")

	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = nil
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}

	close(r.stop)
	r.wg.Wait()

	r.logger.Info().Msg("Session registry shutdown complete.")
}
