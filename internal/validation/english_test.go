package validation

import (
	"strings"
	"testing"
)

func validEnglishForm() *EnglishForm {
	requiresNursing := false
	return &EnglishForm{
		FirstName:              "Ada",
		LastName:               "Lovelace",
		Email:                  "ada@example.com",
		Phone:                  "+1-555-0100",
		Country:                "UK",
		AttendanceDays:         []string{"February 11"},
		ReasonsForConference:   []string{"Colleague"},
		BringChildren:          false,
		RequiresNursing:        &requiresNursing,
		ConsentToPrivacyPolicy: true,
	}
}

func TestValidateEnglish_Valid(t *testing.T) {
	record, errs := ValidateEnglish(validEnglishForm())
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", record.Email)
	}
	if record.NumberOfChildren != nil {
		t.Errorf("expected nil NumberOfChildren, got %v", *record.NumberOfChildren)
	}
	if record.Affiliation != nil {
		t.Errorf("expected nil Affiliation, got %v", *record.Affiliation)
	}
}

func TestValidateEnglish_ChildrenClearedWhenNotBringing(t *testing.T) {
	form := validEnglishForm()
	three := 3
	form.BringChildren = false
	form.NumberOfChildren = &three

	record, errs := ValidateEnglish(form)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.NumberOfChildren != nil {
		t.Errorf("expected NumberOfChildren cleared, got %v", *record.NumberOfChildren)
	}
}

func TestValidateEnglish_ChildrenBounds(t *testing.T) {
	cases := []struct {
		name  string
		count *int
		valid bool
	}{
		{"missing", nil, false},
		{"zero", intPtr(0), false},
		{"one", intPtr(1), true},
		{"ten", intPtr(10), true},
		{"eleven", intPtr(11), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validEnglishForm()
			form.BringChildren = true
			form.NumberOfChildren = tc.count
			form.ConsentToChildcarePolicy = true

			_, errs := ValidateEnglish(form)
			if tc.valid && errs != nil {
				t.Fatalf("expected valid, got %v", errs)
			}
			if !tc.valid {
				if errs == nil {
					t.Fatal("expected errors, got none")
				}
				if len(errs["numberOfChildren"]) == 0 {
					t.Errorf("expected error on numberOfChildren, got %v", errs)
				}
			}
		})
	}
}

func TestValidateEnglish_ChildcareConsent(t *testing.T) {
	t.Run("RequiredWhenNursing", func(t *testing.T) {
		form := validEnglishForm()
		nursing := true
		form.RequiresNursing = &nursing
		form.ConsentToChildcareFacilityPolicy = true

		_, errs := ValidateEnglish(form)
		if len(errs["consentToChildcarePolicy"]) == 0 {
			t.Errorf("expected error on consentToChildcarePolicy, got %v", errs)
		}
	})

	t.Run("FacilityConsentRequiredWhenNursing", func(t *testing.T) {
		form := validEnglishForm()
		nursing := true
		form.RequiresNursing = &nursing
		form.ConsentToChildcarePolicy = true

		_, errs := ValidateEnglish(form)
		if len(errs["consentToChildcareFacilityPolicy"]) == 0 {
			t.Errorf("expected error on consentToChildcareFacilityPolicy, got %v", errs)
		}
	})

	t.Run("NotRequiredOtherwise", func(t *testing.T) {
		_, errs := ValidateEnglish(validEnglishForm())
		if errs != nil {
			t.Errorf("expected no errors, got %v", errs)
		}
	})
}

func TestValidateEnglish_PrivacyConsentAlwaysRequired(t *testing.T) {
	form := validEnglishForm()
	form.ConsentToPrivacyPolicy = false

	_, errs := ValidateEnglish(form)
	if len(errs["consentToPrivacyPolicy"]) == 0 {
		t.Errorf("expected error on consentToPrivacyPolicy, got %v", errs)
	}
}

func TestValidateEnglish_OtherTitleRequired(t *testing.T) {
	form := validEnglishForm()
	other := "Other"
	form.Title = &other

	_, errs := ValidateEnglish(form)
	if len(errs["otherTitle"]) == 0 {
		t.Errorf("expected error on otherTitle, got %v", errs)
	}

	custom := "Archduchess"
	form.OtherTitle = &custom
	record, errs := ValidateEnglish(form)
	if errs != nil {
		t.Fatalf("expected valid, got %v", errs)
	}
	if record.OtherTitle == nil || *record.OtherTitle != "Archduchess" {
		t.Errorf("expected OtherTitle kept, got %v", record.OtherTitle)
	}
}

func TestValidateEnglish_RequiredFields(t *testing.T) {
	form := &EnglishForm{}
	_, errs := ValidateEnglish(form)
	if errs == nil {
		t.Fatal("expected errors for empty form")
	}
	for _, field := range []string{"firstName", "lastName", "email", "phone", "country", "attendanceDays", "reasonsForConference", "requiresNursing", "consentToPrivacyPolicy"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected error on %s", field)
		}
	}
}

func TestValidateEnglish_EmailFormat(t *testing.T) {
	form := validEnglishForm()
	form.Email = "not-an-email"

	_, errs := ValidateEnglish(form)
	if len(errs["email"]) == 0 || errs["email"][0] != "Invalid email format" {
		t.Errorf("expected invalid email format error, got %v", errs)
	}
}

func TestValidateEnglish_LengthBounds(t *testing.T) {
	form := validEnglishForm()
	form.FirstName = strings.Repeat("a", 51)
	long := strings.Repeat("q", 501)
	form.QuestionsForPanelists = &long

	_, errs := ValidateEnglish(form)
	if len(errs["firstName"]) == 0 {
		t.Errorf("expected error on firstName, got %v", errs)
	}
	if len(errs["questionsForPanelists"]) == 0 {
		t.Errorf("expected error on questionsForPanelists, got %v", errs)
	}
}

func intPtr(n int) *int {
	return &n
}
