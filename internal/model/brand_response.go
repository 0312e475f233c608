package model

import "time"

const (
	BrandResponseNone         = "none"
	BrandResponseAcknowledged = "acknowledged"
	BrandResponseCommitted    = "committed"
	BrandResponseDeclined     = "declined"
)

type BrandResponse struct {
	ID         uint64 `gorm:"primaryKey"`
	CampaignID uint64 `gorm:"not null;uniqueIndex:idx_campaign_brand"`
	BrandID    uint64 `gorm:"not null;uniqueIndex:idx_campaign_brand"`
	Status     string `gorm:"type:varchar(20);not null;default:'acknowledged'"`
	Message    string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (BrandResponse) TableName() string {
	return "brand_responses"
}
