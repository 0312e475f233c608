package model

import "time"

// CustomSegment 创建者自定义的受众分群规则集，规则以 JSON 形式存储
type CustomSegment struct {
	ID          uint64 `gorm:"primaryKey"`
	CampaignID  uint64 `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(120);not null"`
	Description string `gorm:"type:text"`
	Rules       string `gorm:"type:json;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CustomSegment) TableName() string {
	return "custom_segments"
}
