package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	shareSubject  = "Your Finance Tracker Summary"
	shareBody     = "Attached is your finance summary."
	shareFilename = "FinanceSummary.pdf"
)

// ErrInvalidPDF means the payload did not decode as base64 data.
var ErrInvalidPDF = errors.New("pdfBase64 is not valid base64 data")

// ShareService relays a client-rendered PDF report to a recipient via the
// configured mail provider. One best-effort attempt, no retry.
type ShareService struct {
	mailer Mailer
}

func NewShareService(mailer Mailer) *ShareService {
	return &ShareService{mailer: mailer}
}

// decodePDF strips an optional data-URI header ("...base64,") and decodes
// the remaining payload. The provider is never called for malformed input.
func decodePDF(pdfBase64 string) ([]byte, error) {
	raw := pdfBase64
	if idx := strings.Index(raw, "base64,"); idx >= 0 {
		raw = raw[idx+len("base64,"):]
	}
	// tolerate whitespace/newlines inserted by clients
	raw = strings.Join(strings.Fields(raw), "")

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, ErrInvalidPDF
	}
	return data, nil
}

// Send decodes the payload and hands it to the mail provider as a PDF
// attachment addressed to recipientEmail.
func (s *ShareService) Send(recipientEmail, pdfBase64 string) error {
	pdf, err := decodePDF(pdfBase64)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(recipientEmail, shareSubject, shareBody, pdf, shareFilename); err != nil {
		return fmt.Errorf("send summary to %q: %w", recipientEmail, err)
	}
	return nil
}
