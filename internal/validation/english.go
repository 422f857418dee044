package validation

import (
	"strings"

	"github.com/icsts-conf/registration-api/internal/models"
)

// EnglishForm is the raw payload of the English registration form.
type EnglishForm struct {
	Title                            *string  `json:"title"`
	OtherTitle                       *string  `json:"otherTitle"`
	FirstName                        string   `json:"firstName"`
	MiddleName                       *string  `json:"middleName"`
	LastName                         string   `json:"lastName"`
	Affiliation                      *string  `json:"affiliation"`
	Position                         *string  `json:"position"`
	Country                          string   `json:"country"`
	Email                            string   `json:"email"`
	Phone                            string   `json:"phone"`
	AttendanceDays                   []string `json:"attendanceDays"`
	ReasonsForConference             []string `json:"reasonsForConference"`
	QuestionsForPanelists            *string  `json:"questionsForPanelists"`
	BringChildren                    bool     `json:"bringChildren"`
	NumberOfChildren                 *int     `json:"numberOfChildren"`
	RequiresNursing                  *bool    `json:"requiresNursing"`
	ConsentToChildcarePolicy         bool     `json:"consentToChildcarePolicy"`
	ConsentToChildcareFacilityPolicy bool     `json:"consentToChildcareFacilityPolicy"`
	ConsentToPrivacyPolicy           bool     `json:"consentToPrivacyPolicy"`
}

const englishMaxChildren = 10

// ValidateEnglish applies the English rule set. On success it returns the
// normalized record (without reference number); on failure the field errors.
func ValidateEnglish(form *EnglishForm) (*models.EnglishRegistration, Errors) {
	errs := Errors{}

	firstName := strings.TrimSpace(form.FirstName)
	lastName := strings.TrimSpace(form.LastName)
	email := strings.TrimSpace(form.Email)
	phone := strings.TrimSpace(form.Phone)
	country := strings.TrimSpace(form.Country)

	title := optional(form.Title)
	otherTitle := optional(form.OtherTitle)
	middleName := optional(form.MiddleName)
	affiliation := optional(form.Affiliation)
	position := optional(form.Position)
	questions := optional(form.QuestionsForPanelists)

	if title != nil && runeLen(*title) > 50 {
		errs.add("title", "Title must be less than 50 characters")
	}
	if title != nil && *title == "Other" && otherTitle == nil {
		errs.add("otherTitle", "Type the other title")
	}
	if otherTitle != nil && runeLen(*otherTitle) > 50 {
		errs.add("otherTitle", "Title must be less than 50 characters")
	}

	if firstName == "" {
		errs.add("firstName", "First name is required")
	} else if runeLen(firstName) > 50 {
		errs.add("firstName", "First name must be less than 50 characters")
	}
	if middleName != nil && runeLen(*middleName) > 50 {
		errs.add("middleName", "Middle name must be less than 50 characters")
	}
	if lastName == "" {
		errs.add("lastName", "Last name is required")
	} else if runeLen(lastName) > 50 {
		errs.add("lastName", "Last name must be less than 50 characters")
	}

	if email == "" {
		errs.add("email", "Email is required")
	} else {
		if !validEmail(email) {
			errs.add("email", "Invalid email format")
		}
		if runeLen(email) > 100 {
			errs.add("email", "Email must be less than 100 characters")
		}
	}

	if phone == "" {
		errs.add("phone", "Phone number is required")
	} else if runeLen(phone) > 20 {
		errs.add("phone", "Phone number must be less than 20 characters")
	}

	if country == "" {
		errs.add("country", "Country is required")
	} else if runeLen(country) > 100 {
		errs.add("country", "Country must be less than 100 characters")
	}

	if affiliation != nil && runeLen(*affiliation) > 100 {
		errs.add("affiliation", "Affiliation must be less than 100 characters")
	}
	if position != nil && runeLen(*position) > 50 {
		errs.add("position", "Position must be less than 50 characters")
	}

	attendanceDays := trimAll(form.AttendanceDays)
	if len(attendanceDays) == 0 {
		errs.add("attendanceDays", "Please select at least one day")
	}
	reasons := trimAll(form.ReasonsForConference)
	if len(reasons) == 0 {
		errs.add("reasonsForConference", "Please select at least one option")
	}

	if questions != nil && runeLen(*questions) > 500 {
		errs.add("questionsForPanelists", "Questions must be less than 500 characters")
	}

	var numberOfChildren *int
	if form.BringChildren {
		if form.NumberOfChildren == nil || *form.NumberOfChildren < 1 || *form.NumberOfChildren > englishMaxChildren {
			errs.add("numberOfChildren", "Please select a valid number of children (1-10)")
		} else {
			n := *form.NumberOfChildren
			numberOfChildren = &n
		}
	}

	if form.RequiresNursing == nil {
		errs.add("requiresNursing", "Please indicate whether you require the childcare service")
	}
	requiresNursing := form.RequiresNursing != nil && *form.RequiresNursing

	if (form.BringChildren || requiresNursing) && !form.ConsentToChildcarePolicy {
		errs.add("consentToChildcarePolicy", "You must accept the childcare policy")
	}
	if requiresNursing && !form.ConsentToChildcareFacilityPolicy {
		errs.add("consentToChildcareFacilityPolicy", "You must accept the childcare facility terms")
	}
	if !form.ConsentToPrivacyPolicy {
		errs.add("consentToPrivacyPolicy", "You must accept the privacy policy to register")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.EnglishRegistration{
		Title:                            title,
		OtherTitle:                       otherTitle,
		FirstName:                        firstName,
		MiddleName:                       middleName,
		LastName:                         lastName,
		Affiliation:                      affiliation,
		Position:                         position,
		Country:                          country,
		Email:                            email,
		Phone:                            phone,
		AttendanceDays:                   attendanceDays,
		ReasonsForConference:             reasons,
		QuestionsForPanelists:            questions,
		BringChildren:                    form.BringChildren,
		NumberOfChildren:                 numberOfChildren,
		RequiresNursing:                  requiresNursing,
		ConsentToChildcarePolicy:         form.ConsentToChildcarePolicy,
		ConsentToChildcareFacilityPolicy: form.ConsentToChildcareFacilityPolicy,
		ConsentToPrivacyPolicy:           form.ConsentToPrivacyPolicy,
	}, nil
}

func trimAll(values []string) models.StringList {
	var out models.StringList
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
