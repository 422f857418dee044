package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/icsts-conf/registration-api/internal/auth"
	"github.com/icsts-conf/registration-api/internal/config"
	"github.com/icsts-conf/registration-api/internal/database"
	"github.com/icsts-conf/registration-api/internal/handlers"
	"github.com/icsts-conf/registration-api/internal/mailer"
	"github.com/icsts-conf/registration-api/internal/notifier"
	"github.com/icsts-conf/registration-api/internal/recaptcha"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	var opsNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Warn().Err(err).Msg("Discord notifier not initialized")
		} else {
			opsNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordAlertChannelID, log)
		}
	}

	sendGridMailer := mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, log)
	verifier := recaptcha.NewClient(cfg.RecaptchaSecretKey, log)

	authHandler := auth.NewAuthHandler(cfg, db)
	registrationHandler := handlers.NewRegistrationHandler(db, cfg, sendGridMailer, verifier, opsNotifier, log)
	adminHandler := handlers.NewAdminHandler(db, authHandler, log)
	apiKeyHandler := handlers.NewAPIKeyHandler(db, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, registrationHandler, adminHandler, apiKeyHandler)

	// Start Server
	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
