package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pprado/futsal-league/brackets"
	"github.com/pprado/futsal-league/config"
	"github.com/pprado/futsal-league/db"
	"github.com/pprado/futsal-league/handlers"
	"github.com/pprado/futsal-league/repositories"
	"github.com/pprado/futsal-league/routes"
	"github.com/pprado/futsal-league/services"
	"github.com/pprado/futsal-league/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	// Logo uploads stay disabled when R2 credentials are missing; every
	// other endpoint works without object storage.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize object storage", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("object storage initialized")
	} else {
		logger.Warn("object storage not configured, logo uploads disabled")
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run()

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	entryRepo := repositories.NewPostgresEntryRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	txRunner := services.NewSQLTxRunner(dbConn)
	authorizer := services.NewCreatorAuthorizer(tournamentRepo)

	authService := services.NewAuthService(userRepo)
	teamService := services.NewTeamService(teamRepo, uploader)
	tournamentService := services.NewTournamentService(tournamentRepo, authorizer, uploader)
	entryService := services.NewEntryService(entryRepo, teamRepo, tournamentRepo, authorizer)
	matchService := services.NewMatchService(matchRepo, authorizer, wsHub, logger)
	fixtureService := services.NewFixtureService(txRunner, tournamentRepo, entryRepo, matchRepo, authorizer, wsHub, logger)
	standingsService := services.NewStandingsService(tournamentRepo, teamRepo, matchRepo, entryRepo)

	jwtSecret := []byte(cfg.JWTSecretKey)
	router := routes.InitRoutes(routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, jwtSecret),
		Team:       handlers.NewTeamHandler(teamService),
		Tournament: handlers.NewTournamentHandler(tournamentService, fixtureService),
		Entry:      handlers.NewEntryHandler(entryService),
		Match:      handlers.NewMatchHandler(matchService),
		Standings:  handlers.NewStandingsHandler(standingsService),
		Websocket:  handlers.NewWebsocketHandler(wsHub, logger),
	}, jwtSecret)

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
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
