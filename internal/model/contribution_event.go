package model

import "time"

const (
	EventTypeSupport             = "support"
	EventTypeComment             = "comment"
	EventTypeShare               = "share"
	EventTypePreferenceSubmitted = "preference_submitted"
	EventTypeSocialShare         = "social_share"
	EventTypeContribution        = "contribution"
)

// ContributionEvent 仅追加的用户行为记录，所有聚合计算的唯一输入
type ContributionEvent struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;index:idx_user_campaign"`
	CampaignID uint64    `gorm:"not null;index:idx_user_campaign;index:idx_campaign_time"`
	EventType  string    `gorm:"type:varchar(30);not null"`
	CreatedAt  time.Time `gorm:"index:idx_campaign_time"`
}

func (ContributionEvent) TableName() string {
	return "contribution_events"
}
