package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	VideoID        *uuid.UUID `gorm:"type:uuid;index"`
	ReviewerName   string     `gorm:"type:varchar(255);not null"`
	ReviewerEmail  string     `gorm:"type:varchar(255);not null"`
	ReviewerAvatar string     `gorm:"type:text"`
	Rating         *int       `gorm:"type:integer"`
	Comment        string     `gorm:"type:text;not null"`
	VideoURL       string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(16);not null;default:'pending';index"`
	IsFeatured     bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
