package usecase

import (
	"fmt"
	"regexp"
	"time"
)

const pdfContentType = "application/pdf"

var fileNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// buildFileName names the artifact after its kind and a millisecond
// timestamp, keeping only filesystem-safe characters.
func buildFileName(reportKind string, now time.Time) string {
	kind := fileNameUnsafe.ReplaceAllString(reportKind, "")
	if kind == "" {
		kind = "report"
	}
	return fmt.Sprintf("%s-report-%d.pdf", kind, now.UnixMilli())
}

func objectKeyFor(userID, fileName string) string {
	return fmt.Sprintf("reports/%s/%s", userID, fileName)
}
