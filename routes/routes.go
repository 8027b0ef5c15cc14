package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pprado/futsal-league/handlers"
	"github.com/pprado/futsal-league/middleware"
)

// Handlers groups everything the router needs. Reads are public, writes
// require a valid token.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Team       *handlers.TeamHandler
	Tournament *handlers.TournamentHandler
	Entry      *handlers.EntryHandler
	Match      *handlers.MatchHandler
	Standings  *handlers.StandingsHandler
	Websocket  *handlers.WebsocketHandler
}

func InitRoutes(h Handlers, jwtSecret []byte) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", h.Team.GetTeam)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Team.CreateTeam)
			r.Put("/{teamID}", h.Team.UpdateTeam)
			r.Put("/{teamID}/logo", h.Team.UploadLogo)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.ListTournaments)
		r.Get("/{tournamentID}", h.Tournament.GetTournament)
		r.Get("/{tournamentID}/entries", h.Entry.ListEntries)
		r.Get("/{tournamentID}/matches", h.Match.ListMatches)
		r.Get("/{tournamentID}/standings", h.Standings.GetTable)
		r.Get("/{tournamentID}/classification", h.Standings.GetClassification)
		r.Get("/{tournamentID}/ws", h.Websocket.Subscribe)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Tournament.CreateTournament)
			r.Put("/{tournamentID}", h.Tournament.UpdateTournament)
			r.Put("/{tournamentID}/logo", h.Tournament.UploadLogo)
			r.Delete("/{tournamentID}", h.Tournament.DeleteTournament)
			r.Post("/{tournamentID}/entries", h.Entry.RegisterTeam)
			r.Post("/{tournamentID}/fixture", h.Tournament.GenerateFixture)
		})
	})

	router.Route("/entries", func(r chi.Router) {
		r.Use(authenticate)
		r.Put("/{entryID}", h.Entry.DecideEntry)
		r.Delete("/{entryID}", h.Entry.WithdrawEntry)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", h.Match.GetMatch)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Put("/{matchID}/result", h.Match.RecordResult)
		})
	})

	return router
}
