/*
Package chat implements the conversation router for squad chats and direct messages.

The router tracks which conversation is open, projects the global message
list per conversation, and derives the inbox summary when no conversation
is open. It holds no entity ownership beyond the append-only message log.
*/
package chat

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
)

// Conversation identifies the open chat: a conversation id plus its mode.
type Conversation struct {
	ID   string `json:"id"`
	Mode Mode   `json:"mode"`
}

// Thread is one inbox entry: a conversation plus its latest message.
type Thread struct {
	Conversation Conversation `json:"conversation"`
	Label        string       `json:"label"`
	LastMessage  *Message     `json:"lastMessage,omitempty"`
}

// Banner describes the "new message below" chip shown when an incoming
// message arrives while the viewer is scrolled up in the history.
type Banner struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Router is the session-scoped conversation state machine.
type Router struct {
	mu       sync.RWMutex
	messages []Message
	active   *Conversation
	onAppend func(Message)

	logger zerolog.Logger
}

// NewRouter creates a Router with the given seed messages.
func NewRouter(seed []Message) *Router {
	return &Router{
		messages: append([]Message(nil), seed...),
		logger:   logx.Logger().With().Str("component", "ConversationRouter").Logger(),
	}
}

// SetAppendListener registers a hook invoked for every appended message.
// The websocket event stream uses it to push messages to the device.
func (r *Router) SetAppendListener(fn func(Message)) {
	r.mu.Lock()
	r.onAppend = fn
	r.mu.Unlock()
}

// Open selects a conversation. Selecting replaces any previously open one.
func (r *Router) Open(id string, mode Mode) {
	r.mu.Lock()
	r.active = &Conversation{ID: id, Mode: mode}
	r.mu.Unlock()

	r.logger.Debug().Str("conversation_id", id).Str("mode", string(mode)).Msg("Conversation opened.")
}

// Back clears the open conversation, returning the viewer to the inbox.
func (r *Router) Back() {
	r.mu.Lock()
	r.active = nil
	r.mu.Unlock()
}

// Active returns the open conversation, or nil when the inbox is showing.
func (r *Router) Active() *Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == nil {
		return nil
	}
	c := *r.active
	return &c
}

// Send appends a message to the open conversation. It fails when no
// conversation is open or the text is blank.
func (r *Router) Send(senderID, senderName, text string) (Message, *errs.CustomError) {
	if strings.TrimSpace(text) == "" {
		return Message{}, errs.NewError(errs.ErrMessageEmpty)
	}

	r.mu.Lock()
	if r.active == nil {
		r.mu.Unlock()
		return Message{}, errs.NewError(errs.ErrNoOpenConversation)
	}

	msg := NewMessage(r.active.ID, senderID, senderName, text)
	r.messages = append(r.messages, msg)
	listener := r.onAppend
	r.mu.Unlock()

	if listener != nil {
		listener(msg)
	}

	return msg, nil
}

// Append records a message produced outside the viewer's own send path
// (seed data, simulated squad members).
func (r *Router) Append(msg Message) {
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	listener := r.onAppend
	r.mu.Unlock()

	if listener != nil {
		listener(msg)
	}
}

// Messages returns the projection of the log filtered to the given
// conversation, in insertion order. The projection is a copy, never a
// window into the underlying log.
func (r *Router) Messages(conversationID string) []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out
}

// Inbox derives the summary view shown when no conversation is open: the
// active party conversation (if any) plus every distinct direct thread
// inferable from the log.
func (r *Router) Inbox(activePartyID, activePartyTitle string) []Thread {
	r.mu.RLock()
	defer r.mu.RUnlock()

	threads := make([]Thread, 0)

	if activePartyID != "" {
		threads = append(threads, Thread{
			Conversation: Conversation{ID: activePartyID, Mode: ModeParty},
			Label:        activePartyTitle,
			LastMessage:  r.lastMessageLocked(activePartyID),
		})
	}

	seen := map[string]bool{}
	for _, m := range r.messages {
		if m.ConversationID == activePartyID || seen[m.ConversationID] {
			continue
		}
		seen[m.ConversationID] = true

		last := r.lastMessageLocked(m.ConversationID)
		label := m.ConversationID
		if last != nil && last.SenderID == m.ConversationID {
			label = last.SenderName
		}
		threads = append(threads, Thread{
			Conversation: Conversation{ID: m.ConversationID, Mode: ModeDirect},
			Label:        label,
			LastMessage:  last,
		})
	}

	return threads
}

// lastMessageLocked returns the newest message of a conversation. Caller
// holds at least a read lock.
func (r *Router) lastMessageLocked(conversationID string) *Message {
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].ConversationID == conversationID {
			m := r.messages[i]
			return &m
		}
	}
	return nil
}

// IncomingBanner decides whether an arriving message warrants a banner
// instead of an auto-scroll. readCount is the client-reported number of
// messages already on screen; viewerID filters the viewer's own sends,
// which always auto-scroll.
func (r *Router) IncomingBanner(conversationID, viewerID string, readCount int) *Banner {
	msgs := r.Messages(conversationID)

	if len(msgs) <= readCount {
		return nil
	}

	last := msgs[len(msgs)-1]
	if last.SenderID == viewerID {
		return nil
	}

	return &Banner{Sender: last.SenderName, Text: last.Text}
}
