package party

import (
	"errors"
	"sync"
)

// SimulatedSharer stands in for the device share surface. The native share
// sheet is reported unavailable, as on a desktop browser, so every invite
// falls through to the clipboard.
type SimulatedSharer struct {
	mu        sync.Mutex
	clipboard string
}

var errNoShareSheet = errors.New("native share sheet unavailable")

// NewSimulatedSharer creates a SimulatedSharer.
func NewSimulatedSharer() *SimulatedSharer {
	return &SimulatedSharer{}
}

// Share implements Sharer. It always reports the share sheet unavailable.
func (s *SimulatedSharer) Share(shareURL, title, text string) error {
	return errNoShareSheet
}

// Clipboard implements Sharer.
func (s *SimulatedSharer) Clipboard(shareURL string) error {
	s.mu.Lock()
	s.clipboard = shareURL
	s.mu.Unlock()
	return nil
}

// LastCopied returns the most recently copied URL.
func (s *SimulatedSharer) LastCopied() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clipboard
}
