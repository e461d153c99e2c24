package email

// EmailMeta selects the template and the recipients for a composed email.
type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

// Email is a fully composed message ready to send.
type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// ReportLink is the data applied to the report download-link template.
type ReportLink struct {
	Name         string
	BrandName    string
	ReportTitle  string
	SignedURL    string
	ExpiresAt    string
	SupportEmail string
}
