package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Report kinds with dedicated titles. Unknown kinds are accepted and fall
// back to a generic title.
const (
	KindSalary     = "salary"
	KindROI        = "roi"
	KindEngagement = "engagement"
	KindAttrition  = "attrition"
)

// FieldKind discriminates the Field variant.
type FieldKind int

const (
	// FieldEmpty marks a null value. The layout engine skips it.
	FieldEmpty FieldKind = iota
	FieldNumber
	FieldText
	FieldGroup
)

// Field is one calculation result entry. Exactly one of Number, Text or
// Group is meaningful, selected by Kind.
type Field struct {
	Label  string
	Kind   FieldKind
	Number float64
	Text   string
	Group  Fields
}

// Fields is an ordered list of result entries. It unmarshals from a JSON
// object preserving document order, which encoding/json maps do not.
type Fields []Field

// UnmarshalJSON walks the raw object token by token so insertion order
// survives. Numbers become FieldNumber, strings FieldText, nested objects
// FieldGroup, null FieldEmpty. Other value types are rejected.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("result_fields must be a JSON object")
	}

	fields, err := decodeFields(dec)
	if err != nil {
		return err
	}
	*fs = fields
	return nil
}

func decodeFields(dec *json.Decoder) (Fields, error) {
	var fields Fields
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		label, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected field label, got %v", tok)
		}

		field, err := decodeFieldValue(dec, label)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeFieldValue(dec *json.Decoder, label string) (Field, error) {
	tok, err := dec.Token()
	if err != nil {
		return Field{}, err
	}

	switch v := tok.(type) {
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return Field{}, fmt.Errorf("field %q: %w", label, err)
		}
		return Field{Label: label, Kind: FieldNumber, Number: n}, nil
	case string:
		return Field{Label: label, Kind: FieldText, Text: v}, nil
	case nil:
		return Field{Label: label, Kind: FieldEmpty}, nil
	case json.Delim:
		if v != '{' {
			return Field{}, fmt.Errorf("field %q: unsupported value type", label)
		}
		group, err := decodeFields(dec)
		if err != nil {
			return Field{}, err
		}
		return Field{Label: label, Kind: FieldGroup, Group: group}, nil
	default:
		return Field{}, fmt.Errorf("field %q: unsupported value type %T", label, tok)
	}
}

// Recipient identifies who receives a delivered report.
type Recipient struct {
	Name    string
	Email   string
	Company string
}

// DownloadInput renders a report and returns the bytes directly.
type DownloadInput struct {
	ReportKind string
	Fields     Fields
}

// DeliverInput renders a report, stores it and emails a signed link.
type DeliverInput struct {
	ReportKind string
	Fields     Fields
	Recipient  Recipient
}

// ListInput filters the caller's past deliveries.
type ListInput struct {
	Limit  int
	Offset int
}

// DownloadOutput is the local delivery result.
type DownloadOutput struct {
	FileName    string
	ContentType string
	Content     []byte
	PageCount   int
}

// DeliverOutput is the server delivery result.
type DeliverOutput struct {
	ReportID  string `json:"report_id"`
	SignedURL string `json:"signed_url"`
	ExpiresAt string `json:"expires_at"`
	EmailSent bool   `json:"email_sent"`
}

// ReportOutput describes one past delivery.
type ReportOutput struct {
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
