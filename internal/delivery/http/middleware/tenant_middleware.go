package middleware

import (
	"net/http"

	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TenantMiddleware maps the authenticated identity to its company. It must
// run after AuthMiddleware.Authenticate.
type TenantMiddleware struct {
	tenantUsecase usecase.TenantUsecase
}

// NewTenantMiddleware is the constructor for TenantMiddleware.
func NewTenantMiddleware(tenantUsecase usecase.TenantUsecase) *TenantMiddleware {
	return &TenantMiddleware{tenantUsecase: tenantUsecase}
}

// RequireTenant resolves the caller's company id and injects it into the
// request context. It fails closed: any resolution failure ends the request
// with 403 and an onboarding hint, and the caller's scope is never widened.
func (m *TenantMiddleware) RequireTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}

		profile, err := m.tenantUsecase.ResolveTenant(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "No company found for this account",
				"code":  "ONBOARDING_REQUIRED",
			})
		}

		c.Set(ContextKeyCompanyID, profile.CompanyID)

		return next(c)
	}
}
