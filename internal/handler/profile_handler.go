/*
Package handler provides HTTP handler functions for profile and avatar management.
*/
package handler

import (
	"net/http"

	"ukoradar/internal/app/storage"
	"ukoradar/internal/pkg/auth/jwt"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

// presetAvatars is the fixed avatar picker shown at onboarding.
var presetAvatars = []string{
	"https://picsum.photos/200/200?random=100",
	"https://picsum.photos/200/200?random=101",
	"https://picsum.photos/200/200?random=102",
	"https://picsum.photos/200/200?random=103",
	"https://picsum.photos/200/200?random=104",
	"https://picsum.photos/200/200?random=105",
	"https://picsum.photos/200/200?random=106",
	"https://picsum.photos/200/200?random=107",
}

// HandleGetProfile returns the viewer's stored profile.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
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

		resp.RespondSuccess(w, r, p)
	}
}

type UpdateProfileInput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// HandleUpdateProfile replaces the viewer's display name and avatar.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input UpdateProfileInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		p, customErr := deps.Profiles.Update(r.Context(), identity.ProfileID, input.Name, input.Avatar)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, p)
	}
}

type SetThemeInput struct {
	// Theme is "dark" or "light".
	Theme string `json:"theme"`
}

// HandleSetTheme stores the viewer's theme preference.
func HandleSetTheme(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input SetThemeInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Profiles.SetTheme(r.Context(), identity.ProfileID, input.Theme); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"theme": input.Theme})
	}
}

// HandlePresetAvatars returns the onboarding avatar picker choices.
func HandlePresetAvatars(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{"avatars": presetAvatars})
	}
}

type PresignAvatarInput struct {
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignAvatarUpload returns a presigned URL for uploading a custom
// avatar. Unavailable when no object storage is configured.
func HandlePresignAvatarUpload(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if deps.Avatars == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		url, err := deps.Avatars.PresignUpload(r.Context(), identity.ProfileID, input.MimeType, input.FileSize)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"uploadUrl": url,
			"avatarKey": storage.AvatarKey(identity.ProfileID),
		})
	}
}

// HandlePresignAvatarDownload returns a presigned URL for fetching the
// viewer's uploaded avatar.
func HandlePresignAvatarDownload(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if deps.Avatars == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		url, err := deps.Avatars.PresignDownload(r.Context(), identity.ProfileID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"downloadUrl": url})
	}
}
