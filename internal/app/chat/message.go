/*
Package chat implements the conversation router for squad chats and direct messages.

This file defines the Message type and its constructors. Messages are
append-only; insertion order is display order.
*/
package chat

import (
	"time"

	"ukoradar/internal/pkg/randx"
)

// Mode distinguishes a party-scoped broadcast chat from a one-to-one thread.
type Mode string

const (
	// ModeParty is a party-scoped broadcast conversation keyed by party id.
	ModeParty Mode = "party"

	// ModeDirect is a one-to-one thread keyed by the other user's id.
	ModeDirect Mode = "dm"
)

// Message is a single chat entry. ConversationID is a discriminated
// reference: a Party id in party mode, a User id in direct mode.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewMessage builds a message stamped with a fresh id and the current time.
func NewMessage(conversationID, senderID, senderName, text string) Message {
	return Message{
		ID:             randx.EntityID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
		Timestamp:      time.Now(),
	}
}
