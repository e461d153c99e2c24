package http

import (
	"report-srv/internal/report"
)

type downloadReportReq struct {
	ReportKind   string        `json:"report_kind" binding:"required"`
	ResultFields report.Fields `json:"result_fields"`
}

func (r downloadReportReq) toInput() report.DownloadInput {
	return report.DownloadInput{
		ReportKind: r.ReportKind,
		Fields:     r.ResultFields,
	}
}

type recipientReq struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company,omitempty"`
}

type deliverReportReq struct {
	ReportKind   string        `json:"report_kind" binding:"required"`
	ResultFields report.Fields `json:"result_fields"`
	Recipient    recipientReq  `json:"recipient" binding:"required"`
}

func (r deliverReportReq) toInput() report.DeliverInput {
	return report.DeliverInput{
		ReportKind: r.ReportKind,
		Fields:     r.ResultFields,
		Recipient: report.Recipient{
			Name:    r.Recipient.Name,
			Email:   r.Recipient.Email,
			Company: r.Recipient.Company,
		},
	}
}

type listReportsReq struct {
	Limit  int
	Offset int
}

func (r listReportsReq) toInput() report.ListInput {
	return report.ListInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type deliverReportResp struct {
	Success   bool   `json:"success"`
	ReportID  string `json:"report_id"`
	SignedURL string `json:"signed_url"`
	ExpiresAt string `json:"expires_at"`
	EmailSent bool   `json:"email_sent"`
}

type listReportsResp struct {
	Reports []reportResp `json:"reports"`
}

type reportResp struct {
	ID             string `json:"id"`
	ReportKind     string `json:"report_kind"`
	Title          string `json:"title"`
	FileName       string `json:"file_name"`
	FileSizeBytes  int64  `json:"file_size_bytes"`
	PageCount      int    `json:"page_count"`
	RecipientEmail string `json:"recipient_email,omitempty"`
	EmailSent      bool   `json:"email_sent"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

func (h *handler) newDeliverReportResp(o report.DeliverOutput) deliverReportResp {
	return deliverReportResp{
		Success:   true,
		ReportID:  o.ReportID,
		SignedURL: o.SignedURL,
		ExpiresAt: o.ExpiresAt,
		EmailSent: o.EmailSent,
	}
}

func (h *handler) newListReportsResp(o []report.ReportOutput) listReportsResp {
	reports := make([]reportResp, 0, len(o))
	for _, r := range o {
		reports = append(reports, reportResp{
			ID:             r.ID,
			ReportKind:     r.ReportKind,
			Title:          r.Title,
			FileName:       r.FileName,
			FileSizeBytes:  r.FileSizeBytes,
			PageCount:      r.PageCount,
			RecipientEmail: r.RecipientEmail,
			EmailSent:      r.EmailSent,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
		})
	}
	return listReportsResp{Reports: reports}
}
