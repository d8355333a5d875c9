package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://vouch.example.com", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateSubmitQR(t *testing.T) {
	service := NewQRCodeService("https://vouch.example.com/", 256, "M")
	companyID := uuid.New()

	qrBytes, err := service.GenerateSubmitQR(companyID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateSubmitQR_DifferentCompaniesDiffer(t *testing.T) {
	service := NewQRCodeService("https://vouch.example.com", 256, "M")

	first, err := service.GenerateSubmitQR(uuid.New())
	require.NoError(t, err)
	second, err := service.GenerateSubmitQR(uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
