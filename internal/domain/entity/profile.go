// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile binds an external identity (the user id issued by the identity
// provider) to exactly one company with a role. Its CompanyID is the sole
// scoping key for every authenticated query that identity performs.
type Profile struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	UserID    uuid.UUID // The external identity this profile belongs to.
	CompanyID uuid.UUID // The single company this identity is scoped to.
	Role      string    // Role within the company, e.g. "owner" or "admin".
	CreatedAt time.Time // Timestamp of when this profile was created.
}

// RoleOwner is the role assigned to the profile created during onboarding.
const RoleOwner = "owner"

// NewProfile binds an external identity to a company with the given role.
func NewProfile(userID, companyID uuid.UUID, role string) *Profile {
	return &Profile{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		CreatedAt: time.Now(),
	}
}
