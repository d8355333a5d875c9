package handler

import (
	"net/http"

	"vouch/internal/delivery/http/response"
	"vouch/internal/infra/metrics"
	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubmissionHandler is the public, unauthenticated review intake endpoint.
type SubmissionHandler struct {
	uc      usecase.SubmissionUsecase
	metrics *metrics.Metrics
}

// NewSubmissionHandler is the constructor for SubmissionHandler, injected by Fx.
func NewSubmissionHandler(uc usecase.SubmissionUsecase, m *metrics.Metrics) *SubmissionHandler {
	return &SubmissionHandler{uc: uc, metrics: m}
}

// SubmitReview accepts a customer review submission. The stored row is
// always pending regardless of any status or featured value in the payload;
// those fields are not even bound.
func (h *SubmissionHandler) SubmitReview(c echo.Context) error {
	var input usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		h.metrics.RecordSubmission("rejected")

		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}
	if err := c.Validate(&input); err != nil {
		h.metrics.RecordSubmission("rejected")

		return errors.WithStack(err)
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), &input)
	if err != nil {
		h.metrics.RecordSubmission("rejected")

		return errors.WithStack(err)
	}

	h.metrics.RecordSubmission("accepted")

	return response.Success(c, http.StatusCreated, review, "Review submitted for approval")
}
