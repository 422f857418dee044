package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/icsts-conf/registration-api/internal/models"
)

func japaneseData(overrides map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		"fullName":               "山田太郎",
		"furigana":               "ヤマダタロウ",
		"email":                  "taro@example.jp",
		"phone":                  "090-0000-0000",
		"country":                "日本",
		"attendanceDays":         []string{"2月11日"},
		"reasonsForConference":   []string{"同僚"},
		"bringChildren":          false,
		"requiresNursing":        false,
		"consentToPrivacyPolicy": true,
	}
	for k, v := range overrides {
		data[k] = v
	}
	return data
}

func TestHandleRegisterJapanese_Success(t *testing.T) {
	db, h, m := setupRegistration(t)

	rec := postRegistration(t, h.HandleRegisterJapanese, "/registerjp", japaneseData(nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["referenceNumber"] != "J0001" {
		t.Errorf("expected reference number J0001, got %v", body["referenceNumber"])
	}

	var registration models.JapaneseRegistration
	if err := db.First(&registration).Error; err != nil {
		t.Fatalf("failed to load registration: %v", err)
	}
	if registration.ReferenceNumber == nil || *registration.ReferenceNumber != "J0001" {
		t.Errorf("expected stored reference number J0001, got %v", registration.ReferenceNumber)
	}

	if len(m.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(m.sent))
	}
	if !strings.Contains(m.sent[0].Text, "登録番号：J0001") {
		t.Errorf("expected reference number in email text, got %q", m.sent[0].Text)
	}
}

func TestHandleRegisterJapanese_ReferenceNumberPadding(t *testing.T) {
	db, h, _ := setupRegistration(t)

	// Occupy ids 1..41 so the next increment id is 42.
	seed := models.JapaneseRegistration{
		FullName: "先客", Furigana: "センキャク", Country: "日本",
		Email: "seed@example.jp", Phone: "000",
	}
	seed.ID = 41
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed registration: %v", err)
	}

	rec := postRegistration(t, h.HandleRegisterJapanese, "/registerjp", japaneseData(nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["referenceNumber"] != "J0042" {
		t.Errorf("expected reference number J0042, got %v", body["referenceNumber"])
	}
}

func TestHandleRegisterJapanese_ChildrenBound(t *testing.T) {
	db, h, _ := setupRegistration(t)

	data := japaneseData(map[string]interface{}{
		"bringChildren":            true,
		"numberOfChildren":         6,
		"consentToChildcarePolicy": true,
	})
	rec := postRegistration(t, h.HandleRegisterJapanese, "/registerjp", data)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	fieldErrors := body["errors"].(map[string]interface{})
	if _, ok := fieldErrors["numberOfChildren"]; !ok {
		t.Errorf("expected error on numberOfChildren, got %v", fieldErrors)
	}

	var count int64
	db.Model(&models.JapaneseRegistration{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no registration, got %d", count)
	}
}

func TestHandleRegisterJapanese_EmailFailureCompensates(t *testing.T) {
	db, h, m := setupRegistration(t)

	m.err = errors.New("provider down")
	rec := postRegistration(t, h.HandleRegisterJapanese, "/registerjp", japaneseData(nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "メール送信に失敗しました。しばらくしてからもう一度お試しください。" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	var count int64
	db.Model(&models.JapaneseRegistration{}).Where("email = ?", "taro@example.jp").Count(&count)
	if count != 0 {
		t.Fatalf("expected record deleted, got %d", count)
	}
}
