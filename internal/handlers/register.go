package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/icsts-conf/registration-api/internal/config"
	"github.com/icsts-conf/registration-api/internal/mailer"
	"github.com/icsts-conf/registration-api/internal/models"
	"github.com/icsts-conf/registration-api/internal/notifier"
	"github.com/icsts-conf/registration-api/internal/recaptcha"
	"github.com/icsts-conf/registration-api/internal/validation"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// minRecaptchaScore is the lowest confidence a submission may carry and
// still reach validation.
const minRecaptchaScore = 0.5

// RecaptchaVerifier abstracts the risk check so tests can score submissions
// deterministically.
type RecaptchaVerifier interface {
	Verify(ctx context.Context, token string) recaptcha.Result
}

type RegistrationHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	mailer   mailer.Mailer
	verifier RecaptchaVerifier
	notifier notifier.Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewRegistrationHandler(db *gorm.DB, cfg *config.Config, m mailer.Mailer, verifier RecaptchaVerifier, n notifier.Notifier, log zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		db:       db,
		cfg:      cfg,
		mailer:   m,
		verifier: verifier,
		notifier: n,
		log:      log,
		now:      time.Now,
	}
}

type englishSubmission struct {
	Data           validation.EnglishForm `json:"data"`
	RecaptchaToken string                 `json:"recaptchaToken"`
}

type japaneseSubmission struct {
	Data           validation.JapaneseForm `json:"data"`
	RecaptchaToken string                  `json:"recaptchaToken"`
}

// HandleRegisterEnglish runs the English submission through the full flow:
// deadline gate, risk check, validation, duplicate check, create, reference
// number, confirmation email. An email failure deletes the row again so the
// address stays free for a retry.
func (h *RegistrationHandler) HandleRegisterEnglish(w http.ResponseWriter, r *http.Request) {
	if !h.registrationOpen() {
		writeError(w, http.StatusBadRequest, "Registration has been closed")
		return
	}

	var submission englishSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.passesRiskCheck(r.Context(), submission.RecaptchaToken) {
		writeError(w, http.StatusBadRequest, "Security check failed. Please try again.")
		return
	}

	record, fieldErrors := validation.ValidateEnglish(&submission.Data)
	if fieldErrors != nil {
		writeFieldErrors(w, fieldErrors)
		return
	}

	registered, err := h.emailRegistered(record.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("duplicate check failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if registered {
		writeError(w, http.StatusBadRequest, "Email is already registered")
		return
	}

	if err := h.db.Create(record).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to create registration")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	ref := fmt.Sprintf("E%04d", record.ID)
	if err := h.db.Model(record).Update("reference_number", ref).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to assign reference number")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	record.ReferenceNumber = &ref

	msg, err := mailer.RenderEnglish(record, h.cfg.PublicBaseURL)
	if err == nil {
		err = h.mailer.Send(r.Context(), msg)
	}
	if err != nil {
		h.compensate("english", record.Email, ref, err, func() error {
			return h.db.Unscoped().Delete(record).Error
		})
		writeError(w, http.StatusInternalServerError, "Email sending failed, please try again later.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":         "Successfull",
		"referenceNumber": ref,
	})
}

// HandleRegisterJapanese is the Japanese-variant twin of
// HandleRegisterEnglish; only validator, prefix, template and messages
// differ.
func (h *RegistrationHandler) HandleRegisterJapanese(w http.ResponseWriter, r *http.Request) {
	if !h.registrationOpen() {
		writeError(w, http.StatusBadRequest, "参加登録は締め切りました")
		return
	}

	var submission japaneseSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "リクエストの形式が正しくありません")
		return
	}

	if !h.passesRiskCheck(r.Context(), submission.RecaptchaToken) {
		writeError(w, http.StatusBadRequest, "セキュリティチェックに失敗しました。もう一度お試しください。")
		return
	}

	record, fieldErrors := validation.ValidateJapanese(&submission.Data)
	if fieldErrors != nil {
		writeFieldErrors(w, fieldErrors)
		return
	}

	registered, err := h.emailRegistered(record.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("duplicate check failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if registered {
		writeError(w, http.StatusBadRequest, "このメールアドレスは既に登録されています")
		return
	}

	if err := h.db.Create(record).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to create registration")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	ref := fmt.Sprintf("J%04d", record.ID)
	if err := h.db.Model(record).Update("reference_number", ref).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to assign reference number")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	record.ReferenceNumber = &ref

	msg, err := mailer.RenderJapanese(record, h.cfg.PublicBaseURL)
	if err == nil {
		err = h.mailer.Send(r.Context(), msg)
	}
	if err != nil {
		h.compensate("japanese", record.Email, ref, err, func() error {
			return h.db.Unscoped().Delete(record).Error
		})
		writeError(w, http.StatusInternalServerError, "メール送信に失敗しました。しばらくしてからもう一度お試しください。")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":         "Successfull",
		"referenceNumber": ref,
	})
}

func (h *RegistrationHandler) passesRiskCheck(ctx context.Context, token string) bool {
	result := h.verifier.Verify(ctx, token)
	return result.Success && result.Score >= minRecaptchaScore
}

// emailRegistered looks for the email in both variant tables. The caller
// reports any hit with the same message so nothing reveals which variant the
// earlier registration used.
func (h *RegistrationHandler) emailRegistered(email string) (bool, error) {
	var count int64
	if err := h.db.Model(&models.EnglishRegistration{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := h.db.Model(&models.JapaneseRegistration{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// compensate hard-deletes the row created before the email failed, freeing
// the address for a resubmission. A failed delete leaves an orphan that only
// an operator can clean up, so it is logged and alerted, never surfaced.
func (h *RegistrationHandler) compensate(variant, email, ref string, cause error, deleteRecord func() error) {
	h.log.Error().Err(cause).Str("variant", variant).Str("reference", ref).Msg("confirmation email failed, rolling back registration")

	if err := deleteRecord(); err != nil {
		h.log.Error().Err(err).Str("variant", variant).Str("reference", ref).Str("email", email).Msg("rollback failed, orphaned registration left behind")
		if h.notifier != nil {
			if alertErr := h.notifier.AlertOrphanedRegistration(variant, email, ref, err); alertErr != nil {
				h.log.Error().Err(alertErr).Msg("failed to alert orphaned registration")
			}
		}
	}
}

func (h *RegistrationHandler) registrationOpen() bool {
	if h.cfg.Deadline.IsZero() {
		return true
	}
	return h.now().Before(h.cfg.Deadline)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeFieldErrors(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, map[string]validation.Errors{"errors": errs})
}
