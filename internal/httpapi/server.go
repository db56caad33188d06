package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"eventdesk-console-go/internal/config"
	"eventdesk-console-go/internal/metrics"
	"eventdesk-console-go/internal/notify"
	"eventdesk-console-go/internal/screens"
	"eventdesk-console-go/internal/token"
	"eventdesk-console-go/internal/upstream"
)

type Server struct {
	Config   config.Config
	Client   *upstream.Client
	Screens  *screens.Set
	Notices  *notify.Center
	Metrics  *metrics.Recorder
	Tokens   *token.Store
	Sessions SessionService
}

func NewServer(cfg config.Config, client *upstream.Client, set *screens.Set, notices *notify.Center, recorder *metrics.Recorder, tokens *token.Store) *Server {
	return &Server{
		Config:  cfg,
		Client:  client,
		Screens: set,
		Notices: notices,
		Metrics: recorder,
		Tokens:  tokens,
		Sessions: SessionService{
			Secret: []byte(cfg.SessionSecret),
			Issuer: cfg.SessionIssuer,
			TTL:    time.Duration(cfg.SessionTTLSeconds) * time.Second,
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/session/login", s.Login)

		api.Group(func(private chi.Router) {
			private.Use(WithSession(s.Sessions))
			private.Post("/session/logout", s.Logout)
			private.Get("/session", s.SessionInfo)

			private.Route("/screens", func(sc chi.Router) {
				mountScreen(sc, "/events", s.Screens.Events, func(screen chi.Router) {
					screen.Post("/{id}/banner", s.EventBanner)
				})
				mountScreen(sc, "/venues", s.Screens.Venues, func(screen chi.Router) {
					screen.Post("/{id}/image", s.VenueImage)
				})
				mountScreen(sc, "/resources", s.Screens.Resources)
				mountScreen(sc, "/users", s.Screens.Users)
				mountScreen(sc, "/organizations", s.Screens.Organizations)
				mountScreen(sc, "/bookings", s.Screens.Bookings)
				mountScreen(sc, "/payments", s.Screens.Payments)
				mountScreen(sc, "/registrations", s.Screens.Registrations)
				mountScreen(sc, "/tickets", s.Screens.Tickets)
			})

			private.Get("/notifications/history", s.NoticeHistory)
			private.Get("/metrics/history", s.MetricsHistory)
		})

		// Socket auth rides on a query parameter instead of a header.
		api.Get("/notifications/ws", s.NoticeSocket)
		api.Get("/metrics/ws", s.MetricsSocket)
	})

	return r
}
