package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries the handlers the router wires up. WS may be nil when
// the API runs without the live feed.
type RouterConfig struct {
	Picks       *PickHandler
	Bets        *BetHandler
	Sports      *SportHandler
	WS          *WSHandler
	CORSOrigins []string
}

// NewRouter builds the HTTP routing table
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/picks", cfg.Picks.GetPicks)
		r.Post("/picks/refresh", cfg.Picks.RefreshPicks)

		r.Get("/sports/tracked", cfg.Sports.GetTrackedSports)

		r.Route("/bets", func(r chi.Router) {
			r.Post("/", cfg.Bets.CreateBet)
			r.Get("/", cfg.Bets.GetBets)
			r.Get("/summary", cfg.Bets.GetBetSummary)
			r.Patch("/{id}", cfg.Bets.SettleBet)
			r.Delete("/{id}", cfg.Bets.DeleteBet)
		})
	})

	if cfg.WS != nil {
		r.Get("/ws", cfg.WS.ServeWS)
	}

	return r
}
