/*
Package handler provides the HTTP handler function for WebSocket connection upgrading and initialization.

This file contains the HandleEventStream function, which is responsible for rate limiting,
authenticating the viewer, upgrading the HTTP connection to WebSocket, and initiating the
event stream client lifecycle.
*/
package handler

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"ukoradar/internal/app/stream"
	"ukoradar/internal/pkg/auth/jwt"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/limiter"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/resp"
)

// HandleEventStream creates an HTTP HandlerFunc to process event stream connection requests.
// The viewer authenticates with their session token in the "token" query parameter, since
// browsers cannot set headers on WebSocket dials.
func HandleEventStream(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("Event stream rejected: Rate limit exceeded.", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			logx.Warn("Event stream rejected: Missing token query parameter")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		payload, err := jwt.ParseToken(tokenString, deps.Config.JWTSecret)
		if err != nil {
			logx.Warn("Event stream rejected: Invalid token", "error", err.Error())
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		sess := deps.Sessions.Open(payload.ProfileID, payload.Name)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := stream.NewClient(sess, conn)

		go client.WritePump()

		logx.Info("Event stream established", "profile_id", payload.ProfileID, "session_id", sess.ID)

		client.ReadPump()
	}
}
