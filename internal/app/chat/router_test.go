package chat

import (
	"testing"

	"ukoradar/internal/pkg/errs"
)

func TestRouter_SendRequiresOpenConversation(t *testing.T) {
	r := NewRouter(nil)

	_, err := r.Send("me", "Me", "hello?")
	if err == nil || err.Code != errs.ErrNoOpenConversation {
		t.Fatalf("expected ErrNoOpenConversation, got %v", err)
	}
}

func TestRouter_SendRejectsBlankText(t *testing.T) {
	r := NewRouter(nil)
	r.Open("p1", ModeParty)

	_, err := r.Send("me", "Me", "   ")
	if err == nil || err.Code != errs.ErrMessageEmpty {
		t.Fatalf("expected ErrMessageEmpty, got %v", err)
	}
}

func TestRouter_SendAppendsToOpenConversation(t *testing.T) {
	r := NewRouter(SeedMessages())
	r.Open("p1", ModeParty)

	msg, err := r.Send("me", "Me", "On my way")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if msg.ConversationID != "p1" {
		t.Errorf("message stamped with conversation %s, want p1", msg.ConversationID)
	}

	msgs := r.Messages("p1")
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[2].Text != "On my way" || msgs[2].SenderName != "Me" {
		t.Errorf("append order broken: last message %+v", msgs[2])
	}
}

func TestRouter_MessagesIsAProjection(t *testing.T) {
	r := NewRouter(SeedMessages())
	r.Open("u1", ModeDirect)
	if _, err := r.Send("me", "Me", "yo Juma"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	party := r.Messages("p1")
	dm := r.Messages("u1")

	if len(party) != 2 {
		t.Errorf("party projection has %d messages, want 2", len(party))
	}
	if len(dm) != 1 {
		t.Errorf("dm projection has %d messages, want 1", len(dm))
	}
}

func TestRouter_BackClearsActive(t *testing.T) {
	r := NewRouter(nil)
	r.Open("p1", ModeParty)

	if r.Active() == nil {
		t.Fatal("conversation should be open")
	}

	r.Back()
	if r.Active() != nil {
		t.Fatal("Back should clear the open conversation")
	}
}

func TestRouter_InboxListsPartyAndDirectThreads(t *testing.T) {
	r := NewRouter(SeedMessages())

	// Two direct threads with different users.
	r.Open("u1", ModeDirect)
	if _, err := r.Send("me", "Me", "juma you up?"); err != nil {
		t.Fatal(err)
	}
	r.Open("u2", ModeDirect)
	if _, err := r.Send("me", "Me", "amani!"); err != nil {
		t.Fatal(err)
	}
	r.Back()

	threads := r.Inbox("p1", "Rooftop Sundowner")

	if len(threads) != 3 {
		t.Fatalf("expected 3 threads (party + 2 dm), got %d", len(threads))
	}
	if threads[0].Conversation.Mode != ModeParty || threads[0].Label != "Rooftop Sundowner" {
		t.Errorf("first thread should be the active party, got %+v", threads[0])
	}

	seen := map[string]bool{}
	for _, th := range threads[1:] {
		if th.Conversation.Mode != ModeDirect {
			t.Errorf("expected dm thread, got %+v", th)
		}
		if seen[th.Conversation.ID] {
			t.Errorf("duplicate thread for %s", th.Conversation.ID)
		}
		seen[th.Conversation.ID] = true
	}
}

func TestRouter_InboxWithoutActiveParty(t *testing.T) {
	r := NewRouter(nil)
	r.Open("u4", ModeDirect)
	if _, err := r.Send("me", "Me", "kofi poa?"); err != nil {
		t.Fatal(err)
	}
	r.Back()

	threads := r.Inbox("", "")
	if len(threads) != 1 {
		t.Fatalf("expected 1 dm thread, got %d", len(threads))
	}
	if threads[0].Conversation.ID != "u4" {
		t.Errorf("unexpected thread %+v", threads[0])
	}
}

func TestRouter_IncomingBanner(t *testing.T) {
	r := NewRouter(nil)
	r.Open("p1", ModeParty)

	r.Append(NewMessage("p1", "u3", "Zuri", "doors open!"))

	// Viewer has read zero messages and is scrolled up: banner shows.
	banner := r.IncomingBanner("p1", "me", 0)
	if banner == nil || banner.Sender != "Zuri" {
		t.Fatalf("expected banner from Zuri, got %+v", banner)
	}

	// Viewer is caught up: no banner.
	if b := r.IncomingBanner("p1", "me", 1); b != nil {
		t.Errorf("caught-up viewer should see no banner, got %+v", b)
	}

	// Viewer's own message never banners.
	if _, err := r.Send("me", "Me", "omw"); err != nil {
		t.Fatal(err)
	}
	if b := r.IncomingBanner("p1", "me", 1); b != nil {
		t.Errorf("own message should not banner, got %+v", b)
	}
}
