/*
Package handler provides the HTTP handler function for the SOS panic action.
*/
package handler

import (
	"fmt"
	"net/http"

	"ukoradar/internal/app/notify"
	"ukoradar/internal/pkg/resp"
)

// HandleSOS broadcasts the viewer's location to their squad. The demo
// surfaces it as an alert notification in the viewer's own queue.
func HandleSOS(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, identity, customErr := viewerSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		visible := 0
		for _, u := range sess.Store.Users() {
			if !u.IsGhost {
				visible++
			}
		}

		sess.Queue.Push(
			"SOS Sent 🚨",
			fmt.Sprintf("Your live location was shared with %d nearby squad members.", visible),
			notify.TypeAlert,
		)

		resp.RespondSuccess(w, r, map[string]any{
			"sent":      true,
			"notified":  visible,
			"profileId": identity.ProfileID,
		})
	}
}
