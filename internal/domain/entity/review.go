// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer testimonial belonging to exactly one company. A review
// may reference a company video and may also carry its own customer-recorded
// video URL.
type Review struct {
	ID             uuid.UUID        `json:"id"`
	CompanyID      uuid.UUID        `json:"company_id"`
	VideoID        *uuid.UUID       `json:"video_id,omitempty"`
	ReviewerName   string           `json:"reviewer_name"`
	ReviewerEmail  string           `json:"reviewer_email"`
	ReviewerAvatar string           `json:"reviewer_avatar,omitempty"`
	Rating         *int             `json:"rating,omitempty"` // 1-5 when present.
	Comment        string           `json:"comment"`
	VideoURL       string           `json:"video_url,omitempty"`
	Status         ModerationStatus `json:"status"`
	IsFeatured     bool             `json:"is_featured"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// NewReview is the single construction path for reviews. Both the public
// submission gateway and the dashboard manual-entry form go through it, so
// the pending status and cleared featured flag can never be bypassed by a
// client-supplied value.
func NewReview(companyID uuid.UUID, videoID *uuid.UUID, reviewerName, reviewerEmail, reviewerAvatar string, rating *int, comment, videoURL string) *Review {
	now := time.Now()

	return &Review{
		ID:             uuid.New(),
		CompanyID:      companyID,
		VideoID:        videoID,
		ReviewerName:   reviewerName,
		ReviewerEmail:  reviewerEmail,
		ReviewerAvatar: reviewerAvatar,
		Rating:         rating,
		Comment:        comment,
		VideoURL:       videoURL,
		Status:         StatusPending,
		IsFeatured:     false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
