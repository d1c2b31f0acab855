package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/roamio/roamio-api/internal/config"
	"github.com/roamio/roamio-api/internal/domain/booking"
	"github.com/roamio/roamio-api/internal/domain/favourite"
	"github.com/roamio/roamio-api/internal/domain/tour"
	"github.com/roamio/roamio-api/internal/middleware"
	"github.com/roamio/roamio-api/internal/pkg/database"
	"github.com/roamio/roamio-api/internal/pkg/jwt"
	"github.com/roamio/roamio-api/internal/pkg/logger"
	"github.com/roamio/roamio-api/internal/pkg/reservations"
	pkgresponse "github.com/roamio/roamio-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Roamio API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	reservationsClient := reservations.NewClient(
		cfg.ReservationsBaseURL,
		cfg.ReservationsToken,
		time.Duration(cfg.ReservationsTimeoutSeconds)*time.Second,
	)

	// ---------- Repositories ----------
	tourRepo := tour.NewRepository(db)
	favouriteRepo := favourite.NewRepository(db)

	// ---------- Services ----------
	tourService := tour.NewService(tourRepo, redis, cfg.CatalogCacheTTL)
	bookingService := booking.NewService(tourService, reservationsClient).WithDefaultCap(cfg.DefaultGuestCap)

	// ---------- Handlers ----------
	tourHandler := tour.NewHandler(tourService, favouriteRepo)
	favouriteHandler := favourite.NewHandler(favouriteRepo)
	bookingHandler := booking.NewHandler(bookingService)

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/tours", tourHandler.Routes(optionalAuth, bookingHandler.ListSlots))
		r.Mount("/favourites", favouriteHandler.Routes(authMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
	})

	// ---------- Server ----------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}

	log.Info().Msg("Server exited")
}
