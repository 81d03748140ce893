package party

import (
	"fmt"
	"net/url"

	"ukoradar/internal/app/notify"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
)

// DefaultInviteBase is the public app URL invites point at.
const DefaultInviteBase = "https://ukoradar.app"

// Sharer abstracts the device share surface: a native share sheet with a
// clipboard fallback. Both are simulated server-side for the demo.
type Sharer interface {
	// Share opens the native share sheet.
	Share(shareURL, title, text string) error

	// Clipboard copies the URL, used when native sharing is unavailable.
	Clipboard(shareURL string) error
}

// BuildInviteURL derives the shareable reference encoding the party id and
// the inviter's identity.
func BuildInviteURL(base, partyID, inviterID string) string {
	u, err := url.Parse(base)
	if err != nil {
		u, _ = url.Parse(DefaultInviteBase)
	}

	q := u.Query()
	q.Set("party", partyID)
	q.Set("inviter", inviterID)
	u.RawQuery = q.Encode()

	return u.String()
}

// WhatsAppShareURL builds the wa.me deep link carrying the invite.
func WhatsAppShareURL(title, inviteURL string) string {
	text := url.QueryEscape(title + " \n" + inviteURL)
	return "https://wa.me/?text=" + text
}

// InviteLinks is the result of an invite generation.
type InviteLinks struct {
	URL      string `json:"url"`
	WhatsApp string `json:"whatsApp"`
}

// Invite generates the shareable links for a party and hands them to the
// share collaborator. Share failure falls back to clipboard copy; both
// failing surfaces an alert notification. The links are returned either way
// so the client can render the invite modal.
func (m *Manager) Invite(partyID string) (InviteLinks, *errs.CustomError) {
	p, ok := m.store.GetParty(partyID)
	if !ok {
		return InviteLinks{}, errs.NewError(errs.ErrPartyNotFound)
	}

	inviteURL := BuildInviteURL(m.inviteBase, p.ID, m.viewerID)
	links := InviteLinks{
		URL:      inviteURL,
		WhatsApp: WhatsAppShareURL(p.Title, inviteURL),
	}

	title := fmt.Sprintf("Join the Squad: %s", p.Title)

	if err := m.sharer.Share(inviteURL, "Join the Squad", title); err != nil {
		logx.Warn("Native share unavailable, falling back to clipboard.", "error", err)

		if err := m.sharer.Clipboard(inviteURL); err != nil {
			m.queue.Push("Sharing Failed", "Could not share or copy the invite link.", notify.TypeAlert)
			return links, nil
		}

		m.queue.Push("Link Copied", "Invite link copied. Paste it to your squad.", notify.TypeSuccess)
		return links, nil
	}

	m.queue.Push("Invite Sent", "Your squad invite is on its way.", notify.TypeSuccess)
	return links, nil
}

// ConsumedInvite is a deep-link invite accepted into the session.
type ConsumedInvite struct {
	PartyID   string `json:"partyId"`
	InviterID string `json:"inviterId"`
}

// ConsumeInvite processes the deep-link query parameters exactly once.
// Re-consuming the same pair is a no-op, so a page reload cannot re-trigger
// the invite.
func (m *Manager) ConsumeInvite(partyID, inviterID string) (*ConsumedInvite, *errs.CustomError) {
	if partyID == "" || inviterID == "" {
		return nil, errs.NewError(errs.ErrInviteInvalid)
	}

	m.mu.Lock()
	if m.consumedInvites == nil {
		m.consumedInvites = make(map[string]bool)
	}
	key := partyID + "|" + inviterID
	if m.consumedInvites[key] {
		m.mu.Unlock()
		return nil, nil
	}
	m.consumedInvites[key] = true
	m.mu.Unlock()

	inviterName := inviterID
	if u, ok := m.store.GetUser(inviterID); ok {
		inviterName = u.Name
	}

	partyTitle := partyID
	if p, ok := m.store.GetParty(partyID); ok {
		partyTitle = p.Title
	}

	m.queue.Push("Squad Invite 🎉", fmt.Sprintf("%s invited you to %s.", inviterName, partyTitle), notify.TypeParty)

	return &ConsumedInvite{PartyID: partyID, InviterID: inviterID}, nil
}
