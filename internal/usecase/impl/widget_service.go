package impl

import (
	"context"
	"log/slog"

	"vouch/config"
	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type widgetService struct {
	companyRepo  repository.CompanyRepository
	reviewRepo   repository.ReviewRepository
	defaultLimit int
	logger       *slog.Logger
}

// WidgetServiceParams holds dependencies for WidgetService, injected by Fx.
type WidgetServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	ReviewRepo  repository.ReviewRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewWidgetService creates the public widget projection service.
func NewWidgetService(params WidgetServiceParams) usecase.WidgetUsecase {
	defaultLimit := 0
	if params.Config.Widget != nil {
		defaultLimit = params.Config.Widget.DefaultLimit
	}

	return &widgetService{
		companyRepo:  params.CompanyRepo,
		reviewRepo:   params.ReviewRepo,
		defaultLimit: defaultLimit,
		logger:       params.Logger,
	}
}

// Widget builds the public projection. The pipeline order is fixed: filter to
// approved, optionally to featured, compute the aggregates over that whole
// set, then truncate to the limit. Aggregates therefore describe the full
// approved set even when only a handful of reviews are rendered.
func (s *widgetService) Widget(ctx context.Context, companyID uuid.UUID, opts *usecase.WidgetOptions) (*usecase.WidgetView, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	reviews, err := s.reviewRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	if opts == nil {
		opts = &usecase.WidgetOptions{}
	}

	filtered := make([]*entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.Status != entity.StatusApproved {
			continue
		}
		if opts.FeaturedOnly && !review.IsFeatured {
			continue
		}
		filtered = append(filtered, review)
	}

	averageRating, reviewCount := aggregate(filtered)

	limit := opts.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	projected := make([]*usecase.WidgetReview, 0, len(filtered))
	for _, review := range filtered {
		projected = append(projected, usecase.NewWidgetReview(review))
	}

	return &usecase.WidgetView{
		Company: &usecase.WidgetCompany{
			ID:          company.ID,
			Name:        company.Name,
			Website:     company.Website,
			LogoURL:     company.LogoURL,
			Description: company.Description,
			BrandColor:  company.BrandColor,
		},
		Reviews:       projected,
		AverageRating: averageRating,
		ReviewCount:   reviewCount,
	}, nil
}

// aggregate computes the average rating and count over the filtered set,
// before any limit truncation. Reviews without a rating count toward the
// total but not toward the average.
func aggregate(reviews []*entity.Review) (float64, int) {
	sum := 0
	rated := 0
	for _, review := range reviews {
		if review.Rating != nil {
			sum += *review.Rating
			rated++
		}
	}

	average := 0.0
	if rated > 0 {
		average = float64(sum) / float64(rated)
	}

	return average, len(reviews)
}
