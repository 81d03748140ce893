/*
Package handler provides HTTP handler functions for the party lifecycle:
discovery, creation, joining, payment gating, hype, rating, and invites.
*/
package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"ukoradar/internal/app/model"
	"ukoradar/internal/app/party"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

// HandleListParties returns the discovery listing, nearest first.
func HandleListParties(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		parties := sess.Store.Parties()
		sort.SliceStable(parties, func(i, j int) bool {
			return parties[i].Distance < parties[j].Distance
		})

		states := make(map[string]party.State, len(parties))
		for _, p := range parties {
			states[p.ID] = sess.Parties.StateOf(p.ID)
		}

		resp.RespondSuccess(w, r, map[string]any{
			"parties": parties,
			"states":  states,
		})
	}
}

type CreatePartyInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Vibe        model.Vibe `json:"vibe,omitempty"`
	StartTime   string     `json:"startTime,omitempty"`
	Capacity    int        `json:"capacity,omitempty"`
	EntryFee    int        `json:"entryFee,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"`
}

// HandleCreateParty broadcasts a new party hosted by the viewer.
func HandleCreateParty(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input CreatePartyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, customErr := sess.Parties.Create(party.CreateInput{
			Title:       input.Title,
			Description: input.Description,
			Vibe:        input.Vibe,
			StartTime:   input.StartTime,
			Capacity:    input.Capacity,
			EntryFee:    input.EntryFee,
			Icon:        input.Icon,
			CoverImage:  input.CoverImage,
		})
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"party": p,
			"state": sess.Parties.StateOf(p.ID),
		})
	}
}

type DescribePartyInput struct {
	Title string `json:"title"`
	Vibe  string `json:"vibe,omitempty"`
}

// HandleDescribeParty generates the AI hype description for the create form.
func HandleDescribeParty(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, customErr := viewerSession(deps, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input DescribePartyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		text := deps.Describer.Describe(r.Context(), input.Title, input.Vibe)

		resp.RespondSuccess(w, r, map[string]any{"description": text})
	}
}

// HandleJoinParty moves the viewer toward a party's conversation, through
// the payment gate when the party charges entry.
func HandleJoinParty(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		state, customErr := sess.Parties.Join(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"state": state})
	}
}

type PayPartyInput struct {
	Phone string `json:"phone"`
}

// HandlePayParty starts the simulated mobile-money payment for a party in
// the payment gate.
func HandlePayParty(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input PayPartyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token, customErr := sess.Parties.Pay(chi.URLParam(r, "id"), input.Phone)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"paymentToken": token})
	}
}

// HandleCancelPayment abandons a pending payment.
func HandleCancelPayment(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		partyID := chi.URLParam(r, "id")
		if customErr := sess.Parties.CancelPayment(partyID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"state": sess.Parties.StateOf(partyID)})
	}
}

// HandleBoostHype applies one hype boost to the party.
func HandleBoostHype(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, customErr := sess.Parties.Boost(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"hypeScore": p.HypeScore})
	}
}

// HandleBeginVibeCheck opens the rating prompt for a joined party.
func HandleBeginVibeCheck(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		partyID := chi.URLParam(r, "id")
		started := sess.Parties.BeginVibeCheck(partyID)

		resp.RespondSuccess(w, r, map[string]any{
			"started": started,
			"state":   sess.Parties.StateOf(partyID),
		})
	}
}

type RatePartyInput struct {
	Hype   int `json:"hype"`
	Safety int `json:"safety"`
}

// HandleRateParty records the vibe check scores and returns the viewer to
// discovery.
func HandleRateParty(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input RatePartyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		partyID := chi.URLParam(r, "id")
		if customErr := sess.Parties.Rate(partyID, input.Hype, input.Safety); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"state": sess.Parties.StateOf(partyID)})
	}
}

// HandleInvite generates the party's invite links and hands them to the
// share collaborator.
func HandleInvite(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		links, customErr := sess.Parties.Invite(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, links)
	}
}

// HandleConsumeInvite processes deep-link invite parameters exactly once.
func HandleConsumeInvite(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		partyID := req.QueryString(r, "party")
		inviterID := req.QueryString(r, "inviter")

		consumed, customErr := sess.Parties.ConsumeInvite(partyID, inviterID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"invite": consumed})
	}
}

type SetMusicInput struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	CoverURL string `json:"coverUrl,omitempty"`
}

// HandleSetMusicTrack sets a party's now-playing track.
func HandleSetMusicTrack(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input SetMusicInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		partyID := chi.URLParam(r, "id")
		track := model.MusicTrack{Title: input.Title, Artist: input.Artist, CoverURL: input.CoverURL}

		if !sess.Store.SetMusicTrack(partyID, track) {
			resp.RespondError(w, r, errs.NewError(errs.ErrPartyNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"track": track})
	}
}

// HandleRideLink builds the ride-hailing deep link to a party.
func HandleRideLink(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, ok := sess.Store.GetParty(chi.URLParam(r, "id"))
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrPartyNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"rideUrl": party.RideLink(p)})
	}
}
