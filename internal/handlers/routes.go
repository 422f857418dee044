package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/icsts-conf/registration-api/internal/auth"
	"github.com/icsts-conf/registration-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, registrationHandler *RegistrationHandler, adminHandler *AdminHandler, apiKeyHandler *APIKeyHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-KEY"},
			AllowCredentials: false,
		}))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Conference Registration API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	huma.Get(api, "/registration/status", registrationHandler.HandleStatus)

	// Registration endpoints keep the legacy response contract (201 with
	// reference number, 400 with per-field errors), so they bypass huma.
	r.Post("/register", registrationHandler.HandleRegisterEnglish)
	r.Post("/registerjp", registrationHandler.HandleRegisterJapanese)

	// Admin routes
	huma.Post(api, "/admin/login", authHandler.HandleLogin)
	withSession := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}
	huma.Get(api, "/admin/session", authHandler.HandleSession, withSession)
	huma.Get(api, "/admin/stats", adminHandler.HandleStats, withSession)
	huma.Post(api, "/admin/childcare-capacity", adminHandler.HandleToggleCapacity, withSession)
	huma.Post(api, "/admin/api-keys", apiKeyHandler.HandleCreate, withSession)
	huma.Get(api, "/admin/api-keys", apiKeyHandler.HandleList, withSession)
	huma.Delete(api, "/admin/api-keys/{id}", apiKeyHandler.HandleDelete, withSession)

	// CSV exports accept a session cookie or an API key.
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/forms/englishForms", adminHandler.HandleEnglishFormsCSV)
		r.Get("/forms/japaneseForms", adminHandler.HandleJapaneseFormsCSV)
	})
}
