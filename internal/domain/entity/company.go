// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant anchor of the system. Every video and review belongs
// to exactly one company, and all authenticated reads and writes are scoped
// by a company id resolved from the caller's profile.
type Company struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the company.
	Name           string    // Display name, the only required attribute.
	Website        string    // Optional public website URL.
	LogoURL        string    // Optional logo image URL.
	Description    string    // Optional free-text description shown on public pages.
	BrandColor     string    // Optional branding color (hex) for widget surfaces.
	GooglePlaceID  string    // Optional Google Place identifier, used only to build outbound review links.
	FacebookPageID string    // Optional Facebook page identifier, used only to build outbound review links.
	ContactEmail   string    // Optional contact email, also the target of submission notifications.
	ContactPhone   string    // Optional contact phone for generated business-card artifacts.
	ContactAddress string    // Optional contact address for generated business-card artifacts.
	CreatedAt      time.Time // Timestamp of when this company was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// NewCompany creates a company with its required name. Optional branding and
// contact fields are set by the caller afterwards.
func NewCompany(name string) *Company {
	now := time.Now()

	return &Company{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
