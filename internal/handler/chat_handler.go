/*
Package handler provides HTTP handler functions for conversations and messaging.
*/
package handler

import (
	"net/http"

	"ukoradar/internal/app/chat"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

// HandleInbox returns the conversation summary view: the active party
// thread plus every direct-message thread.
func HandleInbox(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		activePartyID := sess.Parties.ActivePartyID()
		activeTitle := ""
		if activePartyID != "" {
			if p, ok := sess.Store.GetParty(activePartyID); ok {
				activeTitle = p.Title
			}
		}

		resp.RespondSuccess(w, r, map[string]any{
			"threads": sess.Router.Inbox(activePartyID, activeTitle),
			"active":  sess.Router.Active(),
		})
	}
}

// HandleMessages returns one conversation's messages in insertion order.
func HandleMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, identity, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		conversationID := req.QueryString(r, "conversation")
		if conversationID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		messages := sess.Router.Messages(conversationID)

		// The banner marks incoming messages beyond what the client has read.
		readCount := req.QueryInt(r, "read", len(messages))
		banner := sess.Router.IncomingBanner(conversationID, identity.ProfileID, readCount)

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
			"banner":   banner,
		})
	}
}

type OpenConversationInput struct {
	ConversationID string `json:"conversationId"`
	// Mode is "party" or "dm".
	Mode string `json:"mode"`
}

// HandleOpenConversation selects a conversation.
func HandleOpenConversation(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input OpenConversationInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		mode := chat.Mode(input.Mode)
		if mode != chat.ModeParty && mode != chat.ModeDirect {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}
		if input.ConversationID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrConversationNotFound))
			return
		}

		sess.Router.Open(input.ConversationID, mode)

		resp.RespondSuccess(w, r, map[string]any{"active": sess.Router.Active()})
	}
}

// HandleBack clears the open conversation, returning to the inbox.
func HandleBack(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess.Router.Back()

		resp.RespondSuccess(w, r, map[string]any{"active": nil})
	}
}

type SendMessageInput struct {
	Text string `json:"text"`
}

// HandleSendMessage appends a message from the viewer to the open
// conversation.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		msg, customErr := sess.Parties.SendActive(input.Text)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, msg)
	}
}
