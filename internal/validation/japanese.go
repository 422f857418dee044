package validation

import (
	"strings"

	"github.com/icsts-conf/registration-api/internal/models"
)

// JapaneseForm is the raw payload of the Japanese registration form.
type JapaneseForm struct {
	FullName                 string   `json:"fullName"`
	Furigana                 string   `json:"furigana"`
	Affiliation              *string  `json:"affiliation"`
	Position                 *string  `json:"position"`
	Country                  string   `json:"country"`
	Email                    string   `json:"email"`
	Phone                    string   `json:"phone"`
	AttendanceDays           []string `json:"attendanceDays"`
	ReasonsForConference     []string `json:"reasonsForConference"`
	QuestionsForPanelists    *string  `json:"questionsForPanelists"`
	BringChildren            bool     `json:"bringChildren"`
	NumberOfChildren         *int     `json:"numberOfChildren"`
	RequiresNursing          *bool    `json:"requiresNursing"`
	ConsentToChildcarePolicy bool     `json:"consentToChildcarePolicy"`
	ConsentToPrivacyPolicy   bool     `json:"consentToPrivacyPolicy"`
}

const japaneseMaxChildren = 5

// ValidateJapanese applies the Japanese rule set. Messages are Japanese
// because they are rendered verbatim next to the form inputs.
func ValidateJapanese(form *JapaneseForm) (*models.JapaneseRegistration, Errors) {
	errs := Errors{}

	fullName := strings.TrimSpace(form.FullName)
	furigana := strings.TrimSpace(form.Furigana)
	email := strings.TrimSpace(form.Email)
	phone := strings.TrimSpace(form.Phone)
	country := strings.TrimSpace(form.Country)

	affiliation := optional(form.Affiliation)
	position := optional(form.Position)
	questions := optional(form.QuestionsForPanelists)

	if fullName == "" {
		errs.add("fullName", "姓を入力してください")
	} else if runeLen(fullName) > 50 {
		errs.add("fullName", "姓は50文字以内で入力してください")
	}
	if furigana == "" {
		errs.add("furigana", "フリガナを入力してください")
	} else if runeLen(furigana) > 50 {
		errs.add("furigana", "フリガナは50文字以内で入力してください")
	}

	if email == "" {
		errs.add("email", "メールアドレスが必要です")
	} else {
		if !validEmail(email) {
			errs.add("email", "有効なメールアドレスを入力してください")
		}
		if runeLen(email) > 100 {
			errs.add("email", "メールアドレスの文字数を超えました")
		}
	}

	if phone == "" {
		errs.add("phone", "電話番号を入力してください")
	} else if runeLen(phone) > 20 {
		errs.add("phone", "電話番号は２０文字以内を入力してください")
	}

	if country == "" {
		errs.add("country", "国を選択してください")
	} else if runeLen(country) > 100 {
		errs.add("country", "国名は100文字以内で入力してください")
	}

	if affiliation != nil && runeLen(*affiliation) > 100 {
		errs.add("affiliation", "所属機関は100文字以内で入力してください")
	}
	if position != nil && runeLen(*position) > 50 {
		errs.add("position", "役職は50文字以内で入力してください")
	}

	attendanceDays := trimAll(form.AttendanceDays)
	if len(attendanceDays) == 0 {
		errs.add("attendanceDays", "参加を希望する日にちを少なくとも1つ選択してください")
	}
	reasons := trimAll(form.ReasonsForConference)
	if len(reasons) == 0 {
		errs.add("reasonsForConference", "少なくとも一つの選択肢をお選びください")
	}

	if questions != nil && runeLen(*questions) > 500 {
		errs.add("questionsForPanelists", "質問は500文字以内で入力してください")
	}

	var numberOfChildren *int
	if form.BringChildren {
		if form.NumberOfChildren == nil || *form.NumberOfChildren < 1 || *form.NumberOfChildren > japaneseMaxChildren {
			errs.add("numberOfChildren", "お子様の人数を1名から5名の間をお選びください")
		} else {
			n := *form.NumberOfChildren
			numberOfChildren = &n
		}
	}

	if form.RequiresNursing == nil {
		errs.add("requiresNursing", "託児所の利用希望を選択してください")
	}
	requiresNursing := form.RequiresNursing != nil && *form.RequiresNursing

	if (form.BringChildren || requiresNursing) && !form.ConsentToChildcarePolicy {
		errs.add("consentToChildcarePolicy", "お子様を同伴する場合、または託児サービスを利用する場合は、保育に関する規約に同意する必要があります")
	}
	if !form.ConsentToPrivacyPolicy {
		errs.add("consentToPrivacyPolicy", "プライバシーポリシーに同意する必要があります")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.JapaneseRegistration{
		FullName:                 fullName,
		Furigana:                 furigana,
		Affiliation:              affiliation,
		Position:                 position,
		Country:                  country,
		Email:                    email,
		Phone:                    phone,
		AttendanceDays:           attendanceDays,
		ReasonsForConference:     reasons,
		QuestionsForPanelists:    questions,
		BringChildren:            form.BringChildren,
		NumberOfChildren:         numberOfChildren,
		RequiresNursing:          requiresNursing,
		ConsentToChildcarePolicy: form.ConsentToChildcarePolicy,
		ConsentToPrivacyPolicy:   form.ConsentToPrivacyPolicy,
	}, nil
}
