/*
Package handler provides the HTTP handlers and routing setup for the UKO Radar server.

This file defines the main Router, applying necessary middleware like logging, CORS,
and IP-based rate limiting before delegating requests to specific handlers (API and WebSocket).
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"ukoradar/internal/pkg/auth/jwt"
	"ukoradar/internal/pkg/limiter"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/resp"
)

const (
	CreateRate  = 0.05
	CreateBurst = 2
	JoinRate    = 0.2
	JoinBurst   = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRate), CreateBurst)
	streamLimiter := limiter.NewIPRateLimiter(rate.Limit(JoinRate), JoinBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "UKO Radar Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/onboard", HandleOnboard(deps))
			auth.Get("/login", HandleAutoLogin(deps))
			auth.Post("/logout", HandleLogout(deps))
			auth.Delete("/account", HandleDeleteAccount(deps))
		})

		api.Route("/profile", func(p chi.Router) {
			p.Get("/", HandleGetProfile(deps))
			p.Post("/", HandleUpdateProfile(deps))
			p.Post("/theme", HandleSetTheme(deps))
			p.Get("/avatars", HandlePresetAvatars(deps))
			p.Post("/avatar/presign", HandlePresignAvatarUpload(deps))
			p.Get("/avatar/download", HandlePresignAvatarDownload(deps))
		})

		api.Route("/radar", func(rd chi.Router) {
			rd.Get("/snapshot", HandleRadarSnapshot(deps))
			rd.Post("/radius", HandleSetRadius(deps))
			rd.Post("/status/cycle", HandleCycleStatus(deps))
			rd.Post("/ghost/toggle", HandleToggleGhost(deps))
		})

		api.Route("/party", func(p chi.Router) {
			p.Get("/", HandleListParties(deps))
			p.Post("/describe", HandleDescribeParty(deps))

			rateLimitedCreate := createLimiter.Middleware(HandleCreateParty(deps))
			p.Post("/create", http.HandlerFunc(rateLimitedCreate.ServeHTTP))

			p.Route("/{id}", func(pp chi.Router) {
				pp.Post("/join", HandleJoinParty(deps))
				pp.Post("/pay", HandlePayParty(deps))
				pp.Post("/pay/cancel", HandleCancelPayment(deps))
				pp.Post("/boost", HandleBoostHype(deps))
				pp.Post("/vibe-check", HandleBeginVibeCheck(deps))
				pp.Post("/rate", HandleRateParty(deps))
				pp.Post("/invite", HandleInvite(deps))
				pp.Post("/music", HandleSetMusicTrack(deps))
				pp.Get("/ride-link", HandleRideLink(deps))
			})
		})

		api.Post("/invite/consume", HandleConsumeInvite(deps))

		api.Route("/chat", func(ch chi.Router) {
			ch.Get("/inbox", HandleInbox(deps))
			ch.Get("/messages", HandleMessages(deps))
			ch.Post("/open", HandleOpenConversation(deps))
			ch.Post("/back", HandleBack(deps))
			ch.Post("/send", HandleSendMessage(deps))
		})

		api.Route("/notifications", func(n chi.Router) {
			n.Get("/", HandleListNotifications(deps))
			n.Post("/{id}/dismiss", HandleDismissNotification(deps))
		})

		api.Route("/booking", func(b chi.Router) {
			b.Get("/options", HandleBookingOptions(deps))
			b.Post("/quote", HandleBookingQuote(deps))
			b.Post("/confirm", HandleBookingConfirm(deps))
		})

		api.Post("/sos", HandleSOS(deps))
	})

	r.Get("/ws", HandleEventStream(wsUpgrader, streamLimiter, deps))

	return r
}
