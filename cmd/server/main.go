package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutrigenie/nutrigenie/internal/ai"
	"github.com/nutrigenie/nutrigenie/internal/api"
	"github.com/nutrigenie/nutrigenie/internal/config"
	"github.com/nutrigenie/nutrigenie/internal/repository/mongo"
	"github.com/nutrigenie/nutrigenie/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Starting NutriGenie server...")

	// A local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("Loaded environment from .env")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load config")
	}
	log.Info().Msg("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to MongoDB")
	}
	defer func() {
		log.Info().Msg("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info().Str("database", cfg.Database.Name).Msg("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsurePlanIndexes(ctx, appDB.Collection("plans")); err != nil {
			log.Warn().Err(err).Msg("Failed to create plan indexes")
		}
	}()

	// --- Initialize Repositories ---
	planRepo := mongo.NewMongoPlanRepository(appDB)

	// --- Initialize AI Client ---
	generator := ai.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized.")

	// --- Initialize Services ---
	planService := service.NewPlanService(planRepo, generator)

	// --- Session Store ---
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Session.Secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.MaxAge(int(cfg.Session.MaxAge.Seconds()))

	// --- Initialize Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/public")

	// --- Setup Routes ---
	api.SetupRoutes(router, store, planService, log.Logger)

	// --- Start HTTP Server ---
	// Write timeout has to cover a full completion round trip.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting.")
}
