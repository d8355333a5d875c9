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

// VideoHandler holds dependencies for video-related handlers.
type VideoHandler struct {
	uc usecase.VideoUsecase
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

// CreateVideo registers a company-owned video.
func (h *VideoHandler) CreateVideo(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	var input usecase.CreateVideoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid video input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	video, err := h.uc.CreateVideo(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video created")
}

// ListVideos returns the unified company/customer video listing.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	listings, err := h.uc.ListVideos(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// statusInput carries a moderation status change.
type statusInput struct {
	Status string `json:"status" validate:"required"`
}

// featuredInput carries a featured flag change.
type featuredInput struct {
	Featured bool `json:"featured"`
}

// UpdateVideoStatus moderates a company video.
func (h *VideoHandler) UpdateVideoStatus(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid video id")
	}

	var input statusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetVideoStatus(c.Request().Context(), companyID, videoID, entity.ModerationStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video status updated")
}

// UpdateVideoFeatured toggles a video's featured flag.
func (h *VideoHandler) UpdateVideoFeatured(c echo.Context) error {
	companyID, ok := middleware.CompanyID(c)
	if !ok {
		return response.Forbidden(c, "ONBOARDING_REQUIRED", "No company found for this account")
	}

	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid video id")
	}

	var input featuredInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}

	if err := h.uc.SetVideoFeatured(c.Request().Context(), companyID, videoID, input.Featured); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video featured flag updated")
}

// RecordView increments a video's public view counter.
func (h *VideoHandler) RecordView(c echo.Context) error {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid video id")
	}

	if err := h.uc.RecordView(c.Request().Context(), videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "View recorded")
}
