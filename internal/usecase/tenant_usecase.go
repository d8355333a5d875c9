// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// TenantUsecase resolves an authenticated identity to its single tenant.
type TenantUsecase interface {
	// ResolveTenant maps an external identity's user id to its profile. It
	// fails closed: any lookup failure yields an error, never a broadened
	// scope.
	ResolveTenant(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
