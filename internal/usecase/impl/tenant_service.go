// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tenantService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// TenantServiceParams holds dependencies for TenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewTenantService creates a new tenant resolution service instance.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// ResolveTenant maps an authenticated user id to its profile. Every failure
// path resolves to "no tenant"; the scope is never broadened on error.
func (s *tenantService) ResolveTenant(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoTenant, "no profile for identity")
		}

		s.logger.Error("tenant resolution failed", "userID", userID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrNoTenant, "tenant lookup failed")
	}

	return profile, nil
}
