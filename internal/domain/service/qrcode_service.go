package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateSubmitQR renders a PNG QR code pointing at the public submit
	// page for the given company.
	GenerateSubmitQR(companyID uuid.UUID) ([]byte, error)
}
