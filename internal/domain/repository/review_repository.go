// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vouch/internal/domain/entity"
	"vouch/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByCompany retrieves all reviews belonging to a company in
	// creation-descending order.
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error)

	// FindWithVideoByCompany retrieves the company's reviews that carry a
	// non-empty video URL, in creation-descending order. Used by the unified
	// video listing.
	FindWithVideoByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error)

	// UpdateStatus sets the moderation status of a review.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error

	// UpdateFeatured sets the featured flag of a review.
	UpdateFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	// Delete removes a review permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
