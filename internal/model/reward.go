package model

import "time"

const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

type Reward struct {
	ID          uint64 `gorm:"primaryKey"`
	CampaignID  uint64 `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(120);not null"`
	Description string `gorm:"type:text"`
	PointCost   int    `gorm:"not null;default:0"`
	// Stock 为 0 表示不限量
	Stock        int `gorm:"not null;default:0"`
	ClaimedCount int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Reward) TableName() string {
	return "rewards"
}

type RewardClaim struct {
	ID          uint64 `gorm:"primaryKey"`
	RewardID    uint64 `gorm:"not null;index"`
	UserID      uint64 `gorm:"not null;index"`
	PointsSpent int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (RewardClaim) TableName() string {
	return "reward_claims"
}

// RewardAccount 用户积分账户，TotalPoints 只增不减，SpentPoints 记录已兑换消耗
type RewardAccount struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;uniqueIndex:idx_account_user"`
	TotalPoints int    `gorm:"not null;default:0"`
	SpentPoints int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RewardAccount) TableName() string {
	return "reward_accounts"
}
