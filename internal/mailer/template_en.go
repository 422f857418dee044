package mailer

import (
	"fmt"
	"strings"

	"github.com/icsts-conf/registration-api/internal/models"
)

const englishSubject = "Registration Confirmation - International Conference on Science and Technology for Sustainability 2025"

// RenderEnglish builds the English confirmation email. The record must
// already carry its reference number.
func RenderEnglish(reg *models.EnglishRegistration, baseURL string) (*Message, error) {
	if reg.ReferenceNumber == nil {
		return nil, ErrNoReferenceNumber
	}

	fullTitle := reg.Title
	if reg.Title != nil && *reg.Title == "Other" {
		fullTitle = reg.OtherTitle
	}

	details := []detail{
		{"Title", orEnglish(fullTitle)},
		{"First Name", reg.FirstName},
		{"Middle Name", orEnglish(reg.MiddleName)},
		{"Last Name", reg.LastName},
		{"Affiliation", orEnglish(reg.Affiliation)},
		{"Position", orEnglish(reg.Position)},
		{"Country", reg.Country},
		{"Email", reg.Email},
		{"Phone", reg.Phone},
		{"Attendance Days", strings.Join(reg.AttendanceDays, ", ")},
		{"How did you learn about the conference", strings.Join(reg.ReasonsForConference, ", ")},
		{"Bringing children", yesNoEnglish(reg.BringChildren)},
		{"Number of children", childrenEnglish(reg.NumberOfChildren)},
		{"Childcare service required", yesNoEnglish(reg.RequiresNursing)},
		{"Consent to childcare policy", yesNoEnglish(reg.ConsentToChildcarePolicy)},
		{"Questions for Panelists", noneEnglish(reg.QuestionsForPanelists)},
	}

	main := fmt.Sprintf(`[Automated Reply]
  Subject: %s

  Reference Number: %s

  Thank you for registering for the International Conference on Science and Technology for Sustainability 2025.
  Please present this reference number at the reception desk on the day of the conference.

  International Conference on Science and Technology for Sustainability 2025
  Date & Time: February 11th, 12th, 2026
  Venue: Science Council of Japan　https://www.scj.go.jp/en/scj/access.html

  Please present this reference number along with a valid photo ID at the reception desk on the day of the conference.`,
		englishSubject, *reg.ReferenceNumber)

	formURL := baseURL + "/files/nurseryInformation.pdf"

	text := main
	if reg.RequiresNursing {
		text += fmt.Sprintf(`
  ============================================
  Childcare Service Information (First-come, first-served basis)

  Those who wish to use the childcare service are kindly requested to review and complete the following form.

  Childcare Service Application Form: %s
  ============================================`, formURL)
	}
	text += renderTextDetails("Registration Details", details)

	html, err := renderHTML(&htmlData{
		Main:             main,
		Nursing:          reg.RequiresNursing,
		NursingHeading:   "Childcare Service Information (First-come, first-served basis)",
		NursingBody:      "Those who wish to use the childcare service are kindly requested to review and complete the following form.",
		NursingLinkText:  "Childcare Service Application Form",
		ChildcareFormURL: formURL,
		DetailsHeading:   "Registration Details",
		Details:          details,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:      reg.Email,
		Subject: englishSubject,
		Text:    text,
		HTML:    html,
	}, nil
}

func orEnglish(s *string) string {
	if s == nil || *s == "" {
		return "Not provided"
	}
	return *s
}

func noneEnglish(s *string) string {
	if s == nil || *s == "" {
		return "None"
	}
	return *s
}

func yesNoEnglish(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func childrenEnglish(n *int) string {
	if n == nil {
		return "Not applicable"
	}
	return fmt.Sprintf("%d", *n)
}
