package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"venueos/bookings"
	"venueos/clients"
	"venueos/config"
	"venueos/db"
	"venueos/expenses"
	"venueos/home"
	"venueos/logger"
	"venueos/middleware"
	"venueos/ratelim"
	"venueos/routes"
	"venueos/venues"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	logger.Init(cfg.LogLevel)

	// connect once at startup; the handle is shared by all requests
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}

	rateLimiter := ratelim.NewRateLimiter()
	router := routes.Setup(routes.Handlers{
		Home:     home.NewHandler(database),
		Venues:   venues.NewHandler(database),
		Clients:  clients.NewHandler(database),
		Bookings: bookings.NewHandler(database),
		Expenses: expenses.NewHandler(database),
	}, rateLimiter)

	// CORS → security headers → request id → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.RequestID(middleware.SecurityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSecs) * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("🚀 Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ ListenAndServe error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("❌ Graceful shutdown failed")
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("closing database connection")
	}

	log.Info().Msg("✅ Server stopped cleanly")
}
