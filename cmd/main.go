package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/uide-sports/campeonatos-api/config"
	"github.com/uide-sports/campeonatos-api/db"
	"github.com/uide-sports/campeonatos-api/handlers"
	"github.com/uide-sports/campeonatos-api/live"
	"github.com/uide-sports/campeonatos-api/middleware"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/routes"
	"github.com/uide-sports/campeonatos-api/services"
	"github.com/uide-sports/campeonatos-api/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application terminated", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	pool, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize file uploader: %w", err)
	}

	hub := live.NewHub(logger)
	go hub.Run()

	// Repositorios
	userRepo := repositories.NewPostgresUserRepository(pool)
	sportRepo := repositories.NewPostgresSportRepository(pool)
	typeRepo := repositories.NewPostgresChampionshipTypeRepository(pool)
	programRepo := repositories.NewPostgresProgramRepository(pool)
	bankCodeRepo := repositories.NewPostgresBankCodeRepository(pool)
	refereeRepo := repositories.NewPostgresRefereeRepository(pool)
	championshipRepo := repositories.NewPostgresChampionshipRepository(pool)
	teamRepo := repositories.NewPostgresTeamRepository(pool)
	playerRepo := repositories.NewPostgresPlayerRepository(pool)
	paymentRepo := repositories.NewPostgresPaymentRepository(pool)
	matchRepo := repositories.NewPostgresMatchRepository(pool)
	statisticRepo := repositories.NewPostgresStatisticRepository(pool)
	suspensionRepo := repositories.NewPostgresSuspensionRepository(pool)
	streamRepo := repositories.NewPostgresStreamRepository(pool)

	// Servicios
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	sportService := services.NewSportService(sportRepo)
	typeService := services.NewChampionshipTypeService(typeRepo)
	programService := services.NewProgramService(programRepo)
	bankCodeService := services.NewBankCodeService(bankCodeRepo, uploader)
	refereeService := services.NewRefereeService(refereeRepo, sportRepo)
	championshipService := services.NewChampionshipService(championshipRepo, sportRepo, typeRepo, userRepo, teamRepo, uploader)
	teamService := services.NewTeamService(teamRepo, championshipRepo, userRepo, uploader)
	playerService := services.NewPlayerService(playerRepo, teamRepo, championshipRepo, userRepo, suspensionRepo)
	paymentService := services.NewPaymentService(pool, paymentRepo, teamRepo, bankCodeRepo, uploader)
	statisticService := services.NewStatisticService(statisticRepo, playerRepo)
	matchService := services.NewMatchService(matchRepo, championshipRepo, teamRepo, refereeRepo, statisticService, hub)
	suspensionService := services.NewSuspensionService(suspensionRepo, playerRepo)
	streamService := services.NewStreamService(streamRepo, championshipRepo, matchRepo)
	dashboardService := services.NewDashboardService(userRepo, championshipRepo, teamRepo, matchRepo, suspensionRepo)
	fixtureService := services.NewFixtureService(championshipRepo, teamRepo)

	// Handlers
	h := routes.Handlers{
		Auth:             handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		User:             handlers.NewUserHandler(userService),
		Sport:            handlers.NewSportHandler(sportService),
		ChampionshipType: handlers.NewChampionshipTypeHandler(typeService),
		Program:          handlers.NewProgramHandler(programService),
		BankCode:         handlers.NewBankCodeHandler(bankCodeService),
		Referee:          handlers.NewRefereeHandler(refereeService),
		Championship:     handlers.NewChampionshipHandler(championshipService),
		Team:             handlers.NewTeamHandler(teamService),
		Player:           handlers.NewPlayerHandler(playerService),
		Payment:          handlers.NewPaymentHandler(paymentService),
		Match:            handlers.NewMatchHandler(matchService),
		Suspension:       handlers.NewSuspensionHandler(suspensionService),
		Statistic:        handlers.NewStatisticHandler(statisticService),
		Fixture:          handlers.NewFixtureHandler(fixtureService),
		Stream:           handlers.NewStreamHandler(streamService),
		Dashboard:        handlers.NewDashboardHandler(dashboardService),
		WebSocket:        handlers.NewWebSocketHandler(hub),
	}

	authenticator := middleware.NewAuthenticator(cfg.JWTSecretKey)

	router := chi.NewRouter()
	routes.SetupRoutes(router, h, authenticator)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		logger.Info("shutdown complete")
	}

	return nil
}
