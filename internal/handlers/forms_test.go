package handlers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/icsts-conf/registration-api/internal/auth"
	"github.com/icsts-conf/registration-api/internal/config"
	"github.com/icsts-conf/registration-api/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// formsRouter wires the CSV routes through the auth middleware the way
// RegisterRoutes does.
func formsRouter(t *testing.T) (*gorm.DB, *chi.Mux, *auth.AuthHandler) {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", AdminUsername: "admin", AdminPassword: "secret"}
	authHandler := auth.NewAuthHandler(cfg, db)
	adminHandler := NewAdminHandler(db, authHandler, zerolog.Nop())

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/forms/englishForms", adminHandler.HandleEnglishFormsCSV)
		r.Get("/forms/japaneseForms", adminHandler.HandleJapaneseFormsCSV)
	})
	return db, r, authHandler
}

func getForms(t *testing.T, r *chi.Mux, path, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFormsCSV_Unauthorized(t *testing.T) {
	_, r, _ := formsRouter(t)

	rec := getForms(t, r, "/forms/englishForms", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = getForms(t, r, "/forms/englishForms", "auth_token=not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", rec.Code)
	}
}

func TestFormsCSV_Empty(t *testing.T) {
	_, r, authHandler := formsRouter(t)
	token, _ := authHandler.GenerateToken()

	rec := getForms(t, r, "/forms/englishForms", "auth_token="+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "There are no forms") {
		t.Errorf("expected no-forms signal, got %q", rec.Body.String())
	}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv") {
		t.Error("expected JSON body for empty export, got CSV")
	}
}

func TestFormsCSV_Export(t *testing.T) {
	db, r, authHandler := formsRouter(t)
	token, _ := authHandler.GenerateToken()

	refA, refB := "E0001", "E0002"
	db.Create(&models.EnglishRegistration{ReferenceNumber: &refA, FirstName: "Ada", LastName: "Lovelace", Country: "UK", Email: "ada@example.com", Phone: "1", AttendanceDays: models.StringList{"February 11"}, ReasonsForConference: models.StringList{"Colleague"}})
	db.Create(&models.EnglishRegistration{ReferenceNumber: &refB, FirstName: "Alan", LastName: "Turing", Country: "UK", Email: "alan@example.com", Phone: "2", AttendanceDays: models.StringList{"February 12"}, ReasonsForConference: models.StringList{"Website"}})

	rec := getForms(t, r, "/forms/englishForms", "auth_token="+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("expected text/csv, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=englishForms.csv" {
		t.Errorf("unexpected Content-Disposition %q", got)
	}

	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "id" || rows[0][1] != "referenceNumber" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	// Ordered by increment id ascending.
	if rows[1][1] != "E0001" || rows[2][1] != "E0002" {
		t.Errorf("expected rows ordered by id, got %v / %v", rows[1], rows[2])
	}
}

func TestFormsCSV_APIKey(t *testing.T) {
	db, r, _ := formsRouter(t)

	db.Create(&models.APIKey{Key: "test-key", Name: "export"})
	ref := "J0001"
	db.Create(&models.JapaneseRegistration{ReferenceNumber: &ref, FullName: "山田太郎", Furigana: "ヤマダタロウ", Country: "日本", Email: "taro@example.jp", Phone: "3"})

	req := httptest.NewRequest(http.MethodGet, "/forms/japaneseForms", nil)
	req.Header.Set("X-API-KEY", "test-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with API key, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("expected text/csv, got %q", got)
	}
}
