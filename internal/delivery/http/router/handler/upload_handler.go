package handler

import (
	"net/http"

	"vouch/internal/delivery/http/response"
	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler exposes signed upload authorization.
type UploadHandler struct {
	uc usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// AuthorizeUpload validates the declared file and returns a signed PUT URL.
func (h *UploadHandler) AuthorizeUpload(c echo.Context) error {
	var input usecase.AuthorizeUploadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	auth, err := h.uc.AuthorizeUpload(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, auth, "Upload authorized")
}
