package handler

import (
	"net/http"

	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/response"
	"vouch/internal/domain/entity"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for dashboard review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// CreateReview records a manually entered review.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created")
}

// ListReviews returns the company's reviews for the dashboard.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// UpdateReviewStatus moderates a review.
func (h *ReviewHandler) UpdateReviewStatus(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	var input statusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetReviewStatus(c.Request().Context(), companyID, reviewID, entity.ModerationStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review status updated")
}

// UpdateReviewFeatured toggles a review's featured flag.
func (h *ReviewHandler) UpdateReviewFeatured(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	var input featuredInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}

	if err := h.uc.SetReviewFeatured(c.Request().Context(), companyID, reviewID, input.Featured); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review featured flag updated")
}

// DeleteReview permanently removes a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), companyID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}

// Stats returns the dashboard counters.
func (h *ReviewHandler) Stats(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	stats, err := h.uc.Stats(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
