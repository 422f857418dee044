package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList is stored as a JSON array in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// EnglishRegistration is one submission of the English form. The gorm ID is
// the increment id the reference number is derived from. ReferenceNumber
// stays nil until the row exists and is then set exactly once.
type EnglishRegistration struct {
	gorm.Model
	ReferenceNumber                  *string    `json:"referenceNumber"`
	Title                            *string    `json:"title"`
	OtherTitle                       *string    `json:"otherTitle"`
	FirstName                        string     `json:"firstName"`
	MiddleName                       *string    `json:"middleName"`
	LastName                         string     `json:"lastName"`
	Affiliation                      *string    `json:"affiliation"`
	Position                         *string    `json:"position"`
	Country                          string     `json:"country"`
	Email                            string     `json:"email" gorm:"uniqueIndex"`
	Phone                            string     `json:"phone"`
	AttendanceDays                   StringList `json:"attendanceDays" gorm:"type:text"`
	ReasonsForConference             StringList `json:"reasonsForConference" gorm:"type:text"`
	QuestionsForPanelists            *string    `json:"questionsForPanelists"`
	BringChildren                    bool       `json:"bringChildren"`
	NumberOfChildren                 *int       `json:"numberOfChildren"`
	RequiresNursing                  bool       `json:"requiresNursing"`
	ConsentToChildcarePolicy         bool       `json:"consentToChildcarePolicy"`
	ConsentToChildcareFacilityPolicy bool       `json:"consentToChildcareFacilityPolicy"`
	ConsentToPrivacyPolicy           bool       `json:"consentToPrivacyPolicy"`
}

// JapaneseRegistration is one submission of the Japanese form. Name fields
// collapse to a full name plus its furigana reading.
type JapaneseRegistration struct {
	gorm.Model
	ReferenceNumber          *string    `json:"referenceNumber"`
	FullName                 string     `json:"fullName"`
	Furigana                 string     `json:"furigana"`
	Affiliation              *string    `json:"affiliation"`
	Position                 *string    `json:"position"`
	Country                  string     `json:"country"`
	Email                    string     `json:"email" gorm:"uniqueIndex"`
	Phone                    string     `json:"phone"`
	AttendanceDays           StringList `json:"attendanceDays" gorm:"type:text"`
	ReasonsForConference     StringList `json:"reasonsForConference" gorm:"type:text"`
	QuestionsForPanelists    *string    `json:"questionsForPanelists"`
	BringChildren            bool       `json:"bringChildren"`
	NumberOfChildren         *int       `json:"numberOfChildren"`
	RequiresNursing          bool       `json:"requiresNursing"`
	ConsentToChildcarePolicy bool       `json:"consentToChildcarePolicy"`
	ConsentToPrivacyPolicy   bool       `json:"consentToPrivacyPolicy"`
}
