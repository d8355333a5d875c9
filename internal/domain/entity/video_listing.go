// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VideoSource tags the provenance of an entry in the unified video listing.
type VideoSource string

const (
	// SourceCompany marks a video uploaded by the company itself.
	SourceCompany VideoSource = "company"
	// SourceCustomer marks a video attached to a customer review.
	SourceCustomer VideoSource = "customer"
)

// VideoListing is the dashboard's unified video projection: the union of
// company-owned videos and reviews that carry their own video URL, re-shaped
// into one display record. It has no persisted identity; each entry keeps the
// id of its source row so moderation actions stay addressable.
type VideoListing struct {
	ID            uuid.UUID        `json:"id"` // The source row's original id.
	CompanyID     uuid.UUID        `json:"company_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	VideoURL      string           `json:"video_url"`
	ThumbnailURL  string           `json:"thumbnail_url,omitempty"`
	Duration      *int             `json:"duration,omitempty"`
	ViewCount     int64            `json:"view_count"`
	Status        ModerationStatus `json:"status"`
	Featured      bool             `json:"featured"`
	Source        VideoSource      `json:"source"`
	ReviewerName  string           `json:"reviewer_name,omitempty"`  // Customer entries only.
	ReviewerEmail string           `json:"reviewer_email,omitempty"` // Customer entries only, dashboard surface only.
	Rating        *int             `json:"rating,omitempty"`         // Customer entries only.
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
