// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel is the GORM-specific struct for the 'companies' table.
// It is the tenant anchor every other content row points at.
type CompanyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Website        string    `gorm:"type:text"`
	LogoURL        string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	BrandColor     string    `gorm:"type:varchar(32)"`
	GooglePlaceID  string    `gorm:"type:varchar(255)"`
	FacebookPageID string    `gorm:"type:varchar(255)"`
	ContactEmail   string    `gorm:"type:varchar(255)"`
	ContactPhone   string    `gorm:"type:varchar(64)"`
	ContactAddress string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
