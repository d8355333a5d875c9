package handler

import (
	"net/http"

	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/response"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for company-related handlers.
type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Onboard creates a company and owner profile for a tenantless identity.
func (h *CompanyHandler) Onboard(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.OnboardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.uc.Onboard(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, company, "Company created")
}

// GetCompany returns the caller's own company.
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	company, err := h.uc.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "")
}

// UpdateCompany updates the caller's company.
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company id")
	}

	var input usecase.UpdateCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.uc.UpdateCompany(c.Request().Context(), companyID, targetID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company updated")
}

// SubmitQRCode returns a PNG QR code for the company's public submit page.
func (h *CompanyHandler) SubmitQRCode(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company id")
	}

	png, err := h.uc.SubmitQRCode(c.Request().Context(), companyID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPublicCompany returns the public subset of a company for the submit page.
func (h *CompanyHandler) GetPublicCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company id")
	}

	company, err := h.uc.GetPublicCompany(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	// Only branding and contact-free fields leave the building here.
	return response.Success(c, http.StatusOK, map[string]any{
		"id":          company.ID,
		"name":        company.Name,
		"website":     company.Website,
		"logo_url":    company.LogoURL,
		"description": company.Description,
		"brand_color": company.BrandColor,
	}, "")
}
