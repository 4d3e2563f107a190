package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/uide-sports/campeonatos-api/handlers"
	"github.com/uide-sports/campeonatos-api/middleware"
	"github.com/uide-sports/campeonatos-api/models"
)

// Handlers agrupa todos los handlers HTTP que monta el router.
type Handlers struct {
	Auth             *handlers.AuthHandler
	User             *handlers.UserHandler
	Sport            *handlers.SportHandler
	ChampionshipType *handlers.ChampionshipTypeHandler
	Program          *handlers.ProgramHandler
	BankCode         *handlers.BankCodeHandler
	Referee          *handlers.RefereeHandler
	Championship     *handlers.ChampionshipHandler
	Team             *handlers.TeamHandler
	Player           *handlers.PlayerHandler
	Payment          *handlers.PaymentHandler
	Match            *handlers.MatchHandler
	Suspension       *handlers.SuspensionHandler
	Statistic        *handlers.StatisticHandler
	Fixture          *handlers.FixtureHandler
	Stream           *handlers.StreamHandler
	Dashboard        *handlers.DashboardHandler
	WebSocket        *handlers.WebSocketHandler
}

// SetupRoutes monta todos los endpoints del API. Las rutas de lectura de
// campeonatos, equipos y estadísticas son públicas; las mutaciones van
// protegidas por rol.
func SetupRoutes(router *chi.Mux, h Handlers, auth *middleware.Authenticator) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	adminOnly := middleware.Authorize(models.RoleAdmin)
	adminOrDelegate := middleware.Authorize(models.RoleAdmin, models.RoleDelegate)

	// Autenticación
	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	// Usuarios
	router.Route("/users", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Get("/me", h.User.Me)
		r.Put("/{userID}", h.User.UpdateProfile)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.User.List)
			r.Get("/{userID}", h.User.GetByID)
			r.Put("/{userID}/role", h.User.AssignRole)
			r.Delete("/{userID}", h.User.Delete)
		})
	})

	// Catálogos: lectura pública, gestión solo ADMIN
	router.Route("/sports", func(r chi.Router) {
		r.Get("/", h.Sport.List)
		r.Get("/{sportID}", h.Sport.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Sport.Create)
			r.Put("/{sportID}", h.Sport.Update)
			r.Delete("/{sportID}", h.Sport.Delete)
		})
	})

	router.Route("/championship-types", func(r chi.Router) {
		r.Get("/", h.ChampionshipType.List)
		r.Get("/{typeID}", h.ChampionshipType.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.ChampionshipType.Create)
			r.Put("/{typeID}", h.ChampionshipType.Update)
			r.Delete("/{typeID}", h.ChampionshipType.Delete)
		})
	})

	router.Route("/programs", func(r chi.Router) {
		r.Get("/", h.Program.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Program.Create)
			r.Put("/{programID}", h.Program.Update)
			r.Delete("/{programID}", h.Program.Delete)
		})
	})

	router.Route("/bank-codes", func(r chi.Router) {
		r.Get("/", h.BankCode.List)
		r.Get("/{bankCodeID}", h.BankCode.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.BankCode.Create)
			r.Put("/{bankCodeID}", h.BankCode.Update)
			r.Post("/{bankCodeID}/qr", h.BankCode.UploadQR)
			r.Delete("/{bankCodeID}", h.BankCode.Delete)
		})
	})

	router.Route("/referees", func(r chi.Router) {
		r.Get("/", h.Referee.List)
		r.Get("/{refereeID}", h.Referee.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Referee.Create)
			r.Put("/{refereeID}", h.Referee.Update)
			r.Delete("/{refereeID}", h.Referee.Delete)
		})
	})

	// Campeonatos
	router.Route("/championships", func(r chi.Router) {
		r.Get("/", h.Championship.List)
		r.Get("/{championshipID}", h.Championship.GetByID)
		r.Get("/{championshipID}/teams", h.Team.ListByChampionship)
		r.Get("/{championshipID}/matches", h.Match.ListByChampionship)
		r.Get("/{championshipID}/standings", h.Statistic.Standings)
		r.Get("/{championshipID}/standings/{teamID}", h.Statistic.TeamStatistic)
		r.Get("/{championshipID}/player-statistics", h.Statistic.ListPlayerStatistics)
		r.Get("/{championshipID}/streams", h.Stream.ListByChampionship)
		r.Get("/{championshipID}/live", h.WebSocket.Subscribe)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Championship.Create)
			r.Put("/{championshipID}", h.Championship.Update)
			r.Put("/{championshipID}/state", h.Championship.ChangeState)
			r.Post("/{championshipID}/rules", h.Championship.UploadRules)
			r.Delete("/{championshipID}", h.Championship.Delete)
			r.Post("/{championshipID}/player-statistics", h.Statistic.RecordPlayerStatistic)
			r.Get("/{championshipID}/fixture-proposal", h.Fixture.Propose)
		})
	})

	// Equipos
	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", h.Team.GetByID)
		r.Get("/{teamID}/players", h.Player.ListByTeam)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authorize(models.RoleDelegate))
				r.Post("/", h.Team.Register)
				r.Get("/mine", h.Team.MyTeams)
			})

			r.Group(func(r chi.Router) {
				r.Use(adminOrDelegate)
				r.Put("/{teamID}", h.Team.Update)
				r.Post("/{teamID}/logo", h.Team.UploadLogo)
				r.Get("/{teamID}/payment", h.Payment.GetByTeam)
			})

			r.With(adminOnly).Delete("/{teamID}", h.Team.Delete)
		})
	})

	// Jugadores
	router.Route("/players", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Get("/{playerID}", h.Player.GetByID)
		r.Get("/{playerID}/suspensions", h.Suspension.ListByPlayer)
		r.Get("/{playerID}/suspended", h.Suspension.Status)

		r.Group(func(r chi.Router) {
			r.Use(adminOrDelegate)
			r.Post("/", h.Player.Add)
			r.Put("/{playerID}", h.Player.Update)
			r.Delete("/{playerID}", h.Player.Remove)
		})
	})

	// Pagos
	router.Route("/payments", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(adminOrDelegate)
			r.Post("/", h.Payment.Submit)
			r.Get("/{paymentID}", h.Payment.GetByID)
			r.Post("/{paymentID}/receipt", h.Payment.UploadReceipt)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.Payment.ListByState)
			r.Post("/{paymentID}/approve", h.Payment.Approve)
			r.Post("/{paymentID}/reject", h.Payment.Reject)
		})
	})

	// Partidos
	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", h.Match.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Match.Schedule)
			r.Put("/{matchID}", h.Match.Update)
			r.Post("/{matchID}/result", h.Match.RecordResult)
			r.Delete("/{matchID}", h.Match.Delete)
		})
	})

	// Suspensiones
	router.Route("/suspensions", func(r chi.Router) {
		r.Use(auth.Authenticate, adminOnly)

		r.Get("/", h.Suspension.List)
		r.Post("/", h.Suspension.Create)
		r.Delete("/{suspensionID}", h.Suspension.Revoke)
	})

	// Transmisiones
	router.Route("/streams", func(r chi.Router) {
		r.Get("/", h.Stream.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/", h.Stream.Create)
			r.Put("/{streamID}", h.Stream.Update)
			r.Delete("/{streamID}", h.Stream.Delete)
		})
	})

	// Panel del administrador
	router.With(auth.Authenticate, adminOnly).Get("/dashboard/stats", h.Dashboard.Stats)
}
