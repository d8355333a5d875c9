// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vouch/internal/domain/entity"
	"vouch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for an identity.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when an identity already has a profile.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the operations binding external identities to companies.
type ProfileRepository interface {
	// Create persists a new profile. Each external identity may hold at most
	// one profile; a second insert fails with ErrDuplicateProfile.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile for an external identity.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
