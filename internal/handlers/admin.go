package handlers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/icsts-conf/registration-api/internal/auth"
	"github.com/icsts-conf/registration-api/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
	log         zerolog.Logger
}

func NewAdminHandler(db *gorm.DB, authHandler *auth.AuthHandler, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{db: db, authHandler: authHandler, log: log}
}

type StatsInput struct {
	auth.AuthInput
}

type StatsOutput struct {
	Body struct {
		English         int64 `json:"english"`
		Japanese        int64 `json:"japanese"`
		Total           int64 `json:"total"`
		EnglishNursing  int64 `json:"englishNursing"`
		JapaneseNursing int64 `json:"japaneseNursing"`
	}
}

// HandleStats returns the dashboard counts.
func (h *AdminHandler) HandleStats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	out := &StatsOutput{}
	counts := []struct {
		model interface{}
		query string
		dest  *int64
	}{
		{&models.EnglishRegistration{}, "", &out.Body.English},
		{&models.JapaneseRegistration{}, "", &out.Body.Japanese},
		{&models.EnglishRegistration{}, "requires_nursing = ?", &out.Body.EnglishNursing},
		{&models.JapaneseRegistration{}, "requires_nursing = ?", &out.Body.JapaneseNursing},
	}
	for _, c := range counts {
		q := h.db.Model(c.model)
		if c.query != "" {
			q = q.Where(c.query, true)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, huma.Error500InternalServerError("Failed to count registrations")
		}
	}
	out.Body.Total = out.Body.English + out.Body.Japanese
	return out, nil
}

type ToggleCapacityInput struct {
	auth.AuthInput
}

type ToggleCapacityOutput struct {
	Body struct {
		Reached bool `json:"reached"`
	}
}

// HandleToggleCapacity flips the childcare capacity flag. The public status
// endpoint reads the row on every request, so the change is visible
// immediately.
func (h *AdminHandler) HandleToggleCapacity(ctx context.Context, input *ToggleCapacityInput) (*ToggleCapacityOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	capacity := models.ChildcareCapacity{ID: models.ChildcareCapacityID}
	if err := h.db.FirstOrCreate(&capacity, models.ChildcareCapacity{ID: models.ChildcareCapacityID}).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to read capacity status")
	}

	capacity.Reached = !capacity.Reached
	if err := h.db.Save(&capacity).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update capacity status")
	}

	out := &ToggleCapacityOutput{}
	out.Body.Reached = capacity.Reached
	return out, nil
}

var englishCSVHeader = []string{
	"id", "referenceNumber", "title", "otherTitle", "firstName", "middleName",
	"lastName", "affiliation", "position", "country", "email", "phone",
	"attendanceDays", "reasonsForConference", "questionsForPanelists",
	"bringChildren", "numberOfChildren", "requiresNursing",
	"consentToChildcarePolicy", "consentToChildcareFacilityPolicy",
	"consentToPrivacyPolicy", "createdAt", "updatedAt",
}

// HandleEnglishFormsCSV dumps every English registration ordered by
// increment id. An empty table yields the "no forms" signal instead of a
// headerless file.
func (h *AdminHandler) HandleEnglishFormsCSV(w http.ResponseWriter, r *http.Request) {
	var forms []models.EnglishRegistration
	if err := h.db.Order("id asc").Find(&forms).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to load english forms")
		writeError(w, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}
	if len(forms) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"error": "There are no forms"})
		return
	}

	rows := make([][]string, 0, len(forms))
	for _, f := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(f.ID), 10),
			csvStr(f.ReferenceNumber),
			csvStr(f.Title),
			csvStr(f.OtherTitle),
			f.FirstName,
			csvStr(f.MiddleName),
			f.LastName,
			csvStr(f.Affiliation),
			csvStr(f.Position),
			f.Country,
			f.Email,
			f.Phone,
			strings.Join(f.AttendanceDays, ", "),
			strings.Join(f.ReasonsForConference, ", "),
			csvStr(f.QuestionsForPanelists),
			csvBool(f.BringChildren),
			csvInt(f.NumberOfChildren),
			csvBool(f.RequiresNursing),
			csvBool(f.ConsentToChildcarePolicy),
			csvBool(f.ConsentToChildcareFacilityPolicy),
			csvBool(f.ConsentToPrivacyPolicy),
			f.CreatedAt.Format(time.RFC3339),
			f.UpdatedAt.Format(time.RFC3339),
		})
	}

	h.writeCSV(w, "englishForms.csv", englishCSVHeader, rows)
}

var japaneseCSVHeader = []string{
	"id", "referenceNumber", "fullName", "furigana", "affiliation",
	"position", "country", "email", "phone", "attendanceDays",
	"reasonsForConference", "questionsForPanelists", "bringChildren",
	"numberOfChildren", "requiresNursing", "consentToChildcarePolicy",
	"consentToPrivacyPolicy", "createdAt", "updatedAt",
}

// HandleJapaneseFormsCSV is the Japanese-variant export.
func (h *AdminHandler) HandleJapaneseFormsCSV(w http.ResponseWriter, r *http.Request) {
	var forms []models.JapaneseRegistration
	if err := h.db.Order("id asc").Find(&forms).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to load japanese forms")
		writeError(w, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}
	if len(forms) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"error": "There are no forms"})
		return
	}

	rows := make([][]string, 0, len(forms))
	for _, f := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(f.ID), 10),
			csvStr(f.ReferenceNumber),
			f.FullName,
			f.Furigana,
			csvStr(f.Affiliation),
			csvStr(f.Position),
			f.Country,
			f.Email,
			f.Phone,
			strings.Join(f.AttendanceDays, ", "),
			strings.Join(f.ReasonsForConference, ", "),
			csvStr(f.QuestionsForPanelists),
			csvBool(f.BringChildren),
			csvInt(f.NumberOfChildren),
			csvBool(f.RequiresNursing),
			csvBool(f.ConsentToChildcarePolicy),
			csvBool(f.ConsentToPrivacyPolicy),
			f.CreatedAt.Format(time.RFC3339),
			f.UpdatedAt.Format(time.RFC3339),
		})
	}

	h.writeCSV(w, "japaneseForms.csv", japaneseCSVHeader, rows)
}

func (h *AdminHandler) writeCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		h.log.Error().Err(err).Msg("failed to write CSV header")
		return
	}
	if err := writer.WriteAll(rows); err != nil {
		h.log.Error().Err(err).Msg("failed to write CSV rows")
	}
}

func csvStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvBool(b bool) string {
	return strconv.FormatBool(b)
}

func csvInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
