package mailer

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrNoReferenceNumber is returned when a record reaches rendering before
// its reference number was assigned.
var ErrNoReferenceNumber = errors.New("reference number is required for email generation")

type detail struct {
	Label string
	Value string
}

type htmlData struct {
	Main             string
	Nursing          bool
	NursingHeading   string
	NursingBody      string
	NursingLinkText  string
	ChildcareFormURL string
	DetailsHeading   string
	Details          []detail
}

var htmlTmpl = template.Must(template.New("confirmation").Parse(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; line-height: 1.6;">
  <pre style="white-space: pre-wrap; font-family: sans-serif;">{{.Main}}</pre>
{{if .Nursing}}  <div style="margin-top: 20px; padding: 15px; border: 1px solid #ccc; background-color: #f9f9f9;">
    <p style="font-weight: bold;">{{.NursingHeading}}</p>
    <p>{{.NursingBody}}</p>
    <p><a href="{{.ChildcareFormURL}}" target="_blank" style="color: #0066cc; text-decoration: underline;">{{.NursingLinkText}}</a></p>
  </div>
{{end}}  <div style="margin-top: 20px; padding: 15px; border: 1px solid #ccc; background-color: #f9f9f9;">
    <h3 style="margin-top: 0;">{{.DetailsHeading}}</h3>
    <table style="width: 100%; border-collapse: collapse;">
{{range .Details}}      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>{{.Label}}:</strong></td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">{{.Value}}</td>
      </tr>
{{end}}    </table>
  </div>
</div>`))

func renderHTML(data *htmlData) (string, error) {
	var buf strings.Builder
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderTextDetails(heading string, details []detail) string {
	var buf strings.Builder
	buf.WriteString("\n  ============================================\n")
	fmt.Fprintf(&buf, "  %s\n", heading)
	buf.WriteString("  ============================================\n")
	for _, d := range details {
		fmt.Fprintf(&buf, "  %s: %s\n", d.Label, d.Value)
	}
	return buf.String()
}
