/*
Package handler provides HTTP handler functions for the notification queue.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ukoradar/internal/pkg/resp"
)

// HandleListNotifications returns the queue, newest first.
func HandleListNotifications(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"notifications": sess.Queue.Items()})
	}
}

// HandleDismissNotification removes one notification ahead of its expiry.
// Dismissing an already-expired id is a harmless no-op.
func HandleDismissNotification(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess.Queue.Dismiss(chi.URLParam(r, "id"))

		resp.RespondSuccess(w, r, map[string]any{"notifications": sess.Queue.Items()})
	}
}
