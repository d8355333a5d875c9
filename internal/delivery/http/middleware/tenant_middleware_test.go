package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTenantUsecase returns a fixed profile or error.
type stubTenantUsecase struct {
	profile *entity.Profile
	err     error
}

func (s *stubTenantUsecase) ResolveTenant(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return s.profile, s.err
}

func performTenantRequest(t *testing.T, stub *stubTenantUsecase, authenticated bool) *httptest.ResponseRecorder {
	e := echo.New()
	tenant := NewTenantMiddleware(stub)

	e.GET("/dashboard", func(c echo.Context) error {
		companyID, ok := CompanyID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, companyID.String())
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authenticated {
				c.Set(ContextKeyUserID, uuid.New())
			}

			return next(c)
		}
	}, tenant.RequireTenant)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestTenantMiddleware_InjectsCompanyID(t *testing.T) {
	companyID := uuid.New()
	stub := &stubTenantUsecase{profile: &entity.Profile{CompanyID: companyID}}

	rec := performTenantRequest(t, stub, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, companyID.String(), rec.Body.String())
}

func TestTenantMiddleware_FailsClosedWithoutProfile(t *testing.T) {
	stub := &stubTenantUsecase{err: domainerrors.ErrNoTenant}

	rec := performTenantRequest(t, stub, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ONBOARDING_REQUIRED")
}

func TestTenantMiddleware_RequiresAuthentication(t *testing.T) {
	stub := &stubTenantUsecase{profile: &entity.Profile{CompanyID: uuid.New()}}

	rec := performTenantRequest(t, stub, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
