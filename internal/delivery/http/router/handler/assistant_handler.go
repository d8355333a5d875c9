package handler

import (
	"net/http"

	"vouch/internal/delivery/http/response"
	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler exposes the review drafting endpoint.
type AssistantHandler struct {
	uc usecase.AssistantUsecase
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// GenerateReview returns a draft review for the caller to edit. Nothing is
// stored; repeating the call with the same input is always safe.
func (h *AssistantHandler) GenerateReview(c echo.Context) error {
	var input usecase.GenerateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assistant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	draft, err := h.uc.GenerateReview(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"review": draft}, "")
}
