package handler

import (
	"net/http"
	"strconv"

	"vouch/internal/delivery/http/response"
	"vouch/internal/delivery/http/view"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WidgetHandler serves the public widget surfaces: the embeddable page, the
// standalone showcase page, and the JSON projection.
type WidgetHandler struct {
	uc usecase.WidgetUsecase
}

// NewWidgetHandler is the constructor for WidgetHandler, injected by Fx.
func NewWidgetHandler(uc usecase.WidgetUsecase) *WidgetHandler {
	return &WidgetHandler{uc: uc}
}

// Embed renders the iframe-embeddable review widget.
func (h *WidgetHandler) Embed(c echo.Context) error {
	widget, err := h.widget(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "embed.html", view.NewPageData(widget))
}

// Showcase renders the standalone public review page.
func (h *WidgetHandler) Showcase(c echo.Context) error {
	widget, err := h.widget(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "showcase.html", view.NewPageData(widget))
}

// Projection returns the widget data as JSON for programmatic embeds.
func (h *WidgetHandler) Projection(c echo.Context) error {
	widget, err := h.widget(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, widget, "")
}

func (h *WidgetHandler) widget(c echo.Context) (*usecase.WidgetView, error) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid company id")
	}

	opts := &usecase.WidgetOptions{}
	if featured := c.QueryParam("featured"); featured != "" {
		opts.FeaturedOnly, _ = strconv.ParseBool(featured)
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	widget, err := h.uc.Widget(c.Request().Context(), companyID, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return widget, nil
}
