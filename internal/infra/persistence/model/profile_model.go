package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table. It binds
// an external identity to exactly one company; the unique index on user_id
// enforces the single-tenant-per-user design at the schema level.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(32);not null;default:'owner'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
