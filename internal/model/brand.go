package model

import "time"

type Brand struct {
	ID      uint64  `gorm:"primaryKey"`
	Name    string  `gorm:"type:varchar(120);uniqueIndex:idx_brand_name;not null"`
	OwnerID uint64  `gorm:"not null;index"`
	LogoURL *string `gorm:"type:varchar(500)"`
	// ListeningURLs 社交聆听轮询的公开页面地址，逗号分隔
	ListeningURLs *string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Brand) TableName() string {
	return "brands"
}
