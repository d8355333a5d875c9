package qrcode

import (
	"fmt"
	"strings"

	"vouch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	publicBaseURL        string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service rendering submit-page links.
func NewQRCodeService(publicBaseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		publicBaseURL:        strings.TrimRight(publicBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateSubmitQR encodes the public submit-page URL for the company so a
// printed code drops customers straight onto the review form.
func (s *qrcodeService) GenerateSubmitQR(companyID uuid.UUID) ([]byte, error) {
	submitURL := fmt.Sprintf("%s/submit/%s", s.publicBaseURL, companyID)

	qrCode, err := qrcode.New(submitURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
