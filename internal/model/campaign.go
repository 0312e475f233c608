package model

import (
	"time"
)

const (
	CampaignStatusDraft  = "draft"
	CampaignStatusLive   = "live"
	CampaignStatusPaused = "paused"
	CampaignStatusClosed = "closed"
)

type Campaign struct {
	ID          uint64  `gorm:"primaryKey"`
	Slug        string  `gorm:"type:varchar(120);uniqueIndex:idx_slug;not null"`
	Title       string  `gorm:"type:varchar(120);not null"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatorID   uint64  `gorm:"not null;index"`
	BrandID     *uint64 `gorm:"index"`
	CoverURL    *string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Campaign) TableName() string {
	return "campaigns"
}
