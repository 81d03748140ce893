/*
Package entity contains the in-memory store of Users and Parties for a viewer session.

The store exclusively owns both collections. All mutation goes through its
operations; a single RWMutex keeps the single-writer discipline when timers
and HTTP handlers touch the same session.
*/
package entity

import (
	"sync"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/model"
	"ukoradar/internal/pkg/logx"
)

// HypeBoostQuantum is the hype score increment applied per boost.
const HypeBoostQuantum = 10

// TrendingThreshold is the hype score a party must cross (strictly exceed)
// to count as trending.
const TrendingThreshold = 50

// Store owns the session's User and Party collections. Users are seeded at
// startup and never deleted; parties are append-only.
type Store struct {
	mu      sync.RWMutex
	users   []model.User
	parties []model.Party

	logger zerolog.Logger
}

// NewStore creates a Store seeded with the given collections.
func NewStore(users []model.User, parties []model.Party) *Store {
	return &Store{
		users:   append([]model.User(nil), users...),
		parties: append([]model.Party(nil), parties...),
		logger:  logx.Logger().With().Str("component", "EntityStore").Logger(),
	}
}

// Users returns a copy of the user collection.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.User(nil), s.users...)
}

// Parties returns a copy of the party collection, newest first.
func (s *Store) Parties() []model.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Party(nil), s.parties...)
}

// GetParty returns the party with the given id, or false when absent.
func (s *Store) GetParty(id string) (model.Party, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parties {
		if p.ID == id {
			return p, true
		}
	}
	return model.Party{}, false
}

// GetUser returns the user with the given id, or false when absent.
func (s *Store) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// AddParty prepends a new party so discovery lists show the newest first.
func (s *Store) AddParty(p model.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parties = append([]model.Party{p}, s.parties...)
	s.logger.Info().Str("party_id", p.ID).Str("title", p.Title).Msg("Party added to store.")
}

// UpdateUserStatus sets the named user's status. Unknown names are a no-op.
func (s *Store) UpdateUserStatus(name string, status model.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Name == name {
			s.users[i].Status = status
			return true
		}
	}

	s.logger.Warn().Str("user_name", name).Msg("Status update for unknown user ignored.")
	return false
}

// ToggleGhost flips the named user's ghost flag and returns the new value.
func (s *Store) ToggleGhost(name string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Name == name {
			s.users[i].IsGhost = !s.users[i].IsGhost
			return s.users[i].IsGhost, true
		}
	}
	return false, false
}

// IncrementAttendees bumps the party's attendee count, refusing to exceed
// capacity. It returns the updated party and whether the increment applied.
func (s *Store) IncrementAttendees(id string) (model.Party, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].ID != id {
			continue
		}
		if s.parties[i].Capacity > 0 && s.parties[i].Attendees >= s.parties[i].Capacity {
			return s.parties[i], false
		}
		s.parties[i].Attendees++
		return s.parties[i], true
	}
	return model.Party{}, false
}

// BoostHype increments the party's hype score by HypeBoostQuantum. It
// returns the updated party, whether the boost crossed TrendingThreshold
// (from at-or-below to above), and whether the party exists. The crossing
// flag fires once; further boosts above the threshold report false.
func (s *Store) BoostHype(id string) (model.Party, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].ID != id {
			continue
		}
		before := s.parties[i].HypeScore
		s.parties[i].HypeScore += HypeBoostQuantum
		crossed := before <= TrendingThreshold && s.parties[i].HypeScore > TrendingThreshold
		return s.parties[i], crossed, true
	}
	return model.Party{}, false, false
}

// SetMusicTrack attaches a track to the party. Unknown ids are a no-op.
func (s *Store) SetMusicTrack(id string, track model.MusicTrack) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].ID == id {
			s.parties[i].MusicTrack = &track
			return true
		}
	}
	return false
}
