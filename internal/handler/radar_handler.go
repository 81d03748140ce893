/*
Package handler provides HTTP handler functions for the radar view.
*/
package handler

import (
	"net/http"

	"ukoradar/internal/pkg/req"
	"ukoradar/internal/pkg/resp"
)

// HandleRadarSnapshot projects the viewer's nearby users and parties at
// their selected scan radius.
func HandleRadarSnapshot(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"radius":    sess.Radius(),
			"status":    sess.Status(),
			"ghostMode": sess.GhostMode(),
			"blips":     sess.RadarSnapshot(),
		})
	}
}

type SetRadiusInput struct {
	// Radius is the scan radius in kilometers; one of the supported set.
	Radius int `json:"radius"`
}

// HandleSetRadius selects the viewer's scan radius.
func HandleSetRadius(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input SetRadiusInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := sess.SetRadius(input.Radius); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"radius": sess.Radius(),
			"blips":  sess.RadarSnapshot(),
		})
	}
}

// HandleCycleStatus advances the viewer's status through the fixed rotation.
func HandleCycleStatus(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"status": sess.CycleStatus()})
	}
}

// HandleToggleGhost flips the viewer's ghost flag.
func HandleToggleGhost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"ghostMode": sess.ToggleGhost()})
	}
}
