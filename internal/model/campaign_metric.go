package model

import (
	"time"
)

type CampaignMetric struct {
	ID                uint64    `gorm:"primaryKey"`
	CampaignID        uint64    `gorm:"not null;index:idx_campaign_date,unique"`
	MetricDate        time.Time `gorm:"not null;index:idx_campaign_date,unique;column:metric_date"`
	TotalLobbies      int       `gorm:"not null;default:0"`
	TotalComments     int       `gorm:"not null;default:0"`
	TotalShares       int       `gorm:"not null;default:0"`
	TotalContributors int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (CampaignMetric) TableName() string {
	return "campaign_daily_metrics"
}
