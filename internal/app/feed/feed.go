/*
Package feed produces the session's ambient events.

The demo ships a timer-driven Simulated source that animates the radar in
the absence of a real push feed: a friend coming online, a party dropping
nearby, and a user cycling ghost mode. A real deployment would swap in a
source backed by an external event channel; both sit behind the same
Source contract.
*/
package feed

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/app/model"
	"ukoradar/internal/app/notify"
	"ukoradar/internal/pkg/logx"
)

// Kind enumerates the event categories a Source can emit.
type Kind string

const (
	// KindUserStatus flips a named user's status.
	KindUserStatus Kind = "user_status"

	// KindNewParty drops a new party onto the radar.
	KindNewParty Kind = "new_party"

	// KindGhostToggle flips a named user's ghost flag.
	KindGhostToggle Kind = "ghost_toggle"
)

// Notice is the toast payload accompanying an event. A zero Notice means
// the event is silent.
type Notice struct {
	Title   string
	Message string
	Type    notify.Type
}

// Event is one ambient occurrence delivered to a subscriber.
type Event struct {
	Kind     Kind
	UserName string
	Status   model.Status
	Party    model.Party
	Notice   Notice
}

// Source produces session events. The simulated timers and a future real
// feed are interchangeable implementations.
type Source interface {
	// Subscribe registers a handler and starts delivery. The returned
	// cancel stops delivery and releases the subscription's timers; it is
	// safe to call more than once.
	Subscribe(handler func(Event)) (cancel func())
}

// Delays configures the Simulated source's schedule. Tests shrink it.
type Delays struct {
	// StatusFlip is the one-shot delay before the friend-online event.
	StatusFlip time.Duration

	// PartyDrop is the one-shot delay before the new-party event.
	PartyDrop time.Duration

	// GhostCycle is the repeating interval of the ghost toggle.
	GhostCycle time.Duration
}

// DefaultDelays returns the demo schedule.
func DefaultDelays() Delays {
	return Delays{
		StatusFlip: 15 * time.Second,
		PartyDrop:  25 * time.Second,
		GhostCycle: 8 * time.Second,
	}
}

const (
	// StatusFlipUser is the friend who comes online.
	StatusFlipUser = "Kofi"

	// GhostCycleUser is the user whose ghost flag cycles.
	GhostCycleUser = "Zuri"
)

// droppedParty is the party the simulated source appends.
func droppedParty() model.Party {
	chill, _ := model.NewPresetVibe(string(model.VibeChill))
	return model.Party{
		ID:          "p-sim-1",
		HostID:      "u99",
		Title:       "Secret Beach Bonfire",
		Description: "Spontaneous setup. Bring marshmallows.",
		Vibe:        chill,
		StartTime:   "Now",
		Capacity:    20,
		Attendees:   5,
		Position:    model.Position{X: 35, Y: -40},
		Distance:    1.5,
		CoverImage:  "https://picsum.photos/400/200?random=99",
	}
}

// Simulated is the timer-driven Source.
type Simulated struct {
	delays Delays
	logger zerolog.Logger
}

// NewSimulated creates a Simulated source with the default schedule.
func NewSimulated() *Simulated {
	return NewSimulatedDelays(DefaultDelays())
}

// NewSimulatedDelays creates a Simulated source with a custom schedule.
func NewSimulatedDelays(d Delays) *Simulated {
	return &Simulated{
		delays: d,
		logger: logx.Logger().With().Str("component", "SimulatedFeed").Logger(),
	}
}

// Subscribe implements Source. Each subscription owns its timers; cancel
// stops all of them so a torn-down session can no longer be mutated.
func (s *Simulated) Subscribe(handler func(Event)) func() {
	var (
		once sync.Once
		done = make(chan struct{})
	)

	statusTimer := time.AfterFunc(s.delays.StatusFlip, func() {
		select {
		case <-done:
			return
		default:
		}
		handler(Event{
			Kind:     KindUserStatus,
			UserName: StatusFlipUser,
			Status:   model.StatusReady,
			Notice: Notice{
				Title:   "Squad Update",
				Message: StatusFlipUser + " is now Ready to Party! 🟢",
				Type:    notify.TypeInfo,
			},
		})
	})

	partyTimer := time.AfterFunc(s.delays.PartyDrop, func() {
		select {
		case <-done:
			return
		default:
		}
		p := droppedParty()
		handler(Event{
			Kind:  KindNewParty,
			Party: p,
			Notice: Notice{
				Title:   "New Drop Detected 📍",
				Message: "Secret Beach Bonfire (1.5km)",
				Type:    notify.TypeParty,
			},
		})
	})

	ticker := time.NewTicker(s.delays.GhostCycle)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				handler(Event{Kind: KindGhostToggle, UserName: GhostCycleUser})
			}
		}
	}()

	s.logger.Debug().Msg("Simulated feed subscription started.")

	return func() {
		once.Do(func() {
			close(done)
			statusTimer.Stop()
			partyTimer.Stop()
			ticker.Stop()
			s.logger.Debug().Msg("Simulated feed subscription cancelled.")
		})
	}
}
