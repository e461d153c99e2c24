package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// NewEmail renders the template named by e.TemplateType with data and
// returns the composed message.
func NewEmail(e EmailMeta, data interface{}) (Email, error) {
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(e.TemplateType),
		Body:      body.String(),
	}, nil
}

func getEmailTemplate(templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s.tmpl", templateType)
	return template.ParseFS(emailTemplates, fmt.Sprintf("templates/%s", tmplFile))
}

func getEmailSubject(templateType string) string {
	switch templateType {
	case ReportLinkTemplate:
		return "Your report is ready"
	}
	return ""
}
