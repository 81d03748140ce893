/*
Package handler provides HTTP handler functions for onboarding and session authentication.
*/
package handler

import (
	"net/http"
	"strings"

	"ukoradar/internal/pkg/auth/jwt"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

type OnboardInput struct {
	// Name is the viewer's chosen display handle.
	Name string `json:"name"`
	// Avatar is a preset avatar URL or the viewer's uploaded avatar key.
	Avatar string `json:"avatar,omitempty"`
}

// HandleOnboard creates the viewer's profile and mints their session token.
func HandleOnboard(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input OnboardInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		// A blank handle gets a generated one instead of a validation error.
		name := strings.TrimSpace(input.Name)
		if name == "" {
			generated, err := randx.Nickname()
			if err != nil {
				logx.Error(err, "Failed to generate a fallback handle")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			name = generated
		}

		p, customErr := deps.Profiles.Create(r.Context(), name, input.Avatar)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess := deps.Sessions.Open(p.ID, p.Name)

		payload := &jwt.Payload{
			ProfileID: p.ID,
			SessionID: sess.ID,
			Name:      p.Name,
		}

		tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			logx.Error(err, "Failed to sign session token", "profile_id", p.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token":   tokenString,
			"profile": p,
		})
	}
}

// HandleAutoLogin restores a returning viewer: a valid token plus an
// existing profile row means they skip onboarding.
func HandleAutoLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		p, customErr := deps.Profiles.Get(r.Context(), identity.ProfileID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess := deps.Sessions.Open(p.ID, p.Name)

		resp.RespondSuccess(w, r, map[string]any{
			"profile":   p,
			"sessionId": sess.ID,
		})
	}
}

// HandleLogout tears down the viewer's live session. The profile row stays,
// so the next login skips onboarding.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		deps.Sessions.Close(identity.ProfileID)

		resp.RespondSuccess(w, r, map[string]any{"loggedOut": true})
	}
}

// HandleDeleteAccount removes the profile and its session entirely. The
// next load routes the viewer back through onboarding.
func HandleDeleteAccount(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		deps.Sessions.Close(identity.ProfileID)

		if deps.Avatars != nil {
			if err := deps.Avatars.Delete(r.Context(), identity.ProfileID); err != nil {
				logx.Warn("Failed to delete avatar object on account removal.", "profile_id", identity.ProfileID)
			}
		}

		if customErr := deps.Profiles.Delete(r.Context(), identity.ProfileID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"deleted": true})
	}
}
