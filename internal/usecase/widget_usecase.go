package usecase

import (
	"context"
	"time"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// WidgetUsecase builds the public testimonial projection shared by the embed
// page, the showcase page, and the JSON widget endpoint.
type WidgetUsecase interface {
	// Widget returns approved reviews for the company, optionally restricted
	// to featured ones, with rating aggregates computed over the full
	// filtered set before any limit truncation.
	Widget(ctx context.Context, companyID uuid.UUID, opts *WidgetOptions) (*WidgetView, error)
}

// WidgetOptions carries the embedding page's query parameters.
type WidgetOptions struct {
	FeaturedOnly bool
	// Limit caps the rendered reviews. Zero means the configured default;
	// negative means unlimited.
	Limit int
}

// WidgetView is the public projection. It never contains reviewer email
// addresses or moderation state beyond the implicit "approved".
type WidgetView struct {
	Company       *WidgetCompany  `json:"company"`
	Reviews       []*WidgetReview `json:"reviews"`
	AverageRating float64         `json:"average_rating"` // Over the full filtered set.
	ReviewCount   int             `json:"review_count"`   // Before limit truncation.
}

// WidgetCompany is the public subset of a company.
type WidgetCompany struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Description string    `json:"description,omitempty"`
	BrandColor  string    `json:"brand_color,omitempty"`
}

// WidgetReview is the public subset of an approved review.
type WidgetReview struct {
	ID             uuid.UUID `json:"id"`
	ReviewerName   string    `json:"reviewer_name"`
	ReviewerAvatar string    `json:"reviewer_avatar,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	Comment        string    `json:"comment"`
	VideoURL       string    `json:"video_url,omitempty"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewWidgetReview projects a review onto its public shape.
func NewWidgetReview(review *entity.Review) *WidgetReview {
	return &WidgetReview{
		ID:             review.ID,
		ReviewerName:   review.ReviewerName,
		ReviewerAvatar: review.ReviewerAvatar,
		Rating:         review.Rating,
		Comment:        review.Comment,
		VideoURL:       review.VideoURL,
		IsFeatured:     review.IsFeatured,
		CreatedAt:      review.CreatedAt,
	}
}
