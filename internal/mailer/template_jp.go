package mailer

import (
	"fmt"
	"strings"

	"github.com/icsts-conf/registration-api/internal/models"
)

const japaneseSubject = "持続可能な社会のための科学と技術に関する国際会議2025受付完了"

// RenderJapanese builds the Japanese confirmation email.
func RenderJapanese(reg *models.JapaneseRegistration, baseURL string) (*Message, error) {
	if reg.ReferenceNumber == nil {
		return nil, ErrNoReferenceNumber
	}

	details := []detail{
		{"氏名", reg.FullName},
		{"フリガナ", reg.Furigana},
		{"所属機関", orJapanese(reg.Affiliation)},
		{"役職", orJapanese(reg.Position)},
		{"国", reg.Country},
		{"メールアドレス", reg.Email},
		{"電話番号", reg.Phone},
		{"参加を希望する日にち", strings.Join(reg.AttendanceDays, "、")},
		{"本会議を知った理由", strings.Join(reg.ReasonsForConference, "、")},
		{"お子様の同伴", ariNashi(reg.BringChildren)},
		{"お子様の人数", childrenJapanese(reg.NumberOfChildren)},
		{"託児所の利用希望", ariNashi(reg.RequiresNursing)},
		{"保育に関する規約への同意", consentJapanese(reg.ConsentToChildcarePolicy)},
		{"パネリストへの質問", noneJapanese(reg.QuestionsForPanelists)},
	}

	main := fmt.Sprintf(`【自動返信メール】
  タイトル：%s

  登録番号：%s

  この度は持続可能な社会のための科学と技術に関する国際会議2025にお申込みいただきありがとうございます。
  当日は上記登録番号を会場受付にてご提出ください。

  持続可能な社会のための科学と技術に関する国際会議2025
  日時：2026年2月11日、12日
  会場：日本学術会議講堂　https://www.scj.go.jp/ja/other/info.html

  当日、顔写真付きの身分証をご持参くださいますようお願い申し上げます。
  (旧姓でご登録の場合は、ご本人確認のため、顔写真つき身分証に併せて、名刺など（登録した苗字が分かるもの）をお持ちください)`,
		japaneseSubject, *reg.ReferenceNumber)

	formURL := baseURL + "/files/nurseryInformationJP.pdf"

	text := main
	if reg.RequiresNursing {
		text += fmt.Sprintf(`
  ============================================
  託児所サービスについて（先着順）

  託児所サービスをご希望の方は、以下のフォームをご確認の上、ご記入ください。

  託児所サービス申込フォーム：%s
  ============================================`, formURL)
	}
	text += renderTextDetails("ご登録内容", details)

	html, err := renderHTML(&htmlData{
		Main:             main,
		Nursing:          reg.RequiresNursing,
		NursingHeading:   "託児所サービスについて（先着順）",
		NursingBody:      "託児所サービスをご希望の方は、以下のフォームをご確認の上、ご記入ください。",
		NursingLinkText:  "託児所サービス申込フォーム",
		ChildcareFormURL: formURL,
		DetailsHeading:   "ご登録内容",
		Details:          details,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:      reg.Email,
		Subject: japaneseSubject,
		Text:    text,
		HTML:    html,
	}, nil
}

func orJapanese(s *string) string {
	if s == nil || *s == "" {
		return "未記入"
	}
	return *s
}

func noneJapanese(s *string) string {
	if s == nil || *s == "" {
		return "なし"
	}
	return *s
}

func ariNashi(b bool) string {
	if b {
		return "あり"
	}
	return "なし"
}

func consentJapanese(b bool) string {
	if b {
		return "同意"
	}
	return "同意なし"
}

func childrenJapanese(n *int) string {
	if n == nil {
		return "該当なし"
	}
	return fmt.Sprintf("%d名", *n)
}
