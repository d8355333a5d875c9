package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel is the GORM-specific struct for the 'videos' table.
type VideoModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	VideoURL     string    `gorm:"type:text;not null"`
	ThumbnailURL string    `gorm:"type:text"`
	Duration     *int      `gorm:"type:integer"`
	ViewCount    int64     `gorm:"not null;default:0"`
	Status       string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	Featured     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
