package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// CompanyUsecase defines the interface for company-related business operations.
type CompanyUsecase interface {
	// Onboard creates a company together with an owner profile for the
	// authenticated identity, atomically.
	Onboard(ctx context.Context, userID uuid.UUID, input *OnboardInput) (*entity.Company, error)

	// GetCompany returns the caller's own company.
	GetCompany(ctx context.Context, companyID uuid.UUID) (*entity.Company, error)

	// GetPublicCompany returns the public subset of a company for submit and
	// showcase pages.
	GetPublicCompany(ctx context.Context, companyID uuid.UUID) (*entity.Company, error)

	// UpdateCompany updates the caller's company. The target id must equal
	// the caller's resolved company id.
	UpdateCompany(ctx context.Context, companyID, targetID uuid.UUID, input *UpdateCompanyInput) (*entity.Company, error)

	// SubmitQRCode renders a PNG QR code pointing at the company's public
	// submit page. The target id must equal the caller's resolved company id.
	SubmitQRCode(ctx context.Context, companyID, targetID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// OnboardInput defines the data required to create a company during onboarding.
type OnboardInput struct {
	Name           string `json:"name" validate:"required"`
	Website        string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL        string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Description    string `json:"description,omitempty"`
	BrandColor     string `json:"brand_color,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	ContactAddress string `json:"contact_address,omitempty"`
}

// UpdateCompanyInput defines the data that may be changed on a company.
// Nil fields are left untouched.
type UpdateCompanyInput struct {
	Name           *string `json:"name,omitempty"`
	Website        *string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL        *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Description    *string `json:"description,omitempty"`
	BrandColor     *string `json:"brand_color,omitempty"`
	GooglePlaceID  *string `json:"google_place_id,omitempty"`
	FacebookPageID *string `json:"facebook_page_id,omitempty"`
	ContactEmail   *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
	ContactAddress *string `json:"contact_address,omitempty"`
}
