package dto

import "time"

// RewardDTO 奖励目录条目
type RewardDTO struct {
	ID          uint64 `json:"id"`
	CampaignID  uint64 `json:"campaignId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PointCost   int    `json:"pointCost"`
	Stock       int    `json:"stock"`
	Remaining   int    `json:"remaining"` // Stock 为 0 时恒为 -1（不限量）
	Claimed     bool   `json:"claimed"`
}

// RewardStatusDTO 用户奖励账户状态
type RewardStatusDTO struct {
	TotalPoints     int                 `json:"totalPoints"`
	AvailablePoints int                 `json:"availablePoints"`
	CurrentTier     string              `json:"currentTier"`
	NextTierPoints  int                 `json:"nextTierPoints"`
	ClaimedRewards  []*ClaimedRewardDTO `json:"claimedRewards"`
}

// ClaimedRewardDTO 已兑换记录
type ClaimedRewardDTO struct {
	RewardID    uint64    `json:"rewardId"`
	Title       string    `json:"title"`
	PointsSpent int       `json:"pointsSpent"`
	ClaimedAt   time.Time `json:"claimedAt"`
}

// RewardCatalogDTO 奖励列表接口的返回包装
type RewardCatalogDTO struct {
	Rewards []*RewardDTO     `json:"rewards"`
	Status  *RewardStatusDTO `json:"status"`
}

// RewardClaimDTO 兑换请求
type RewardClaimDTO struct {
	RewardID uint64 `json:"rewardId" binding:"required"`
}

// RewardCreateDTO 创建奖励
type RewardCreateDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=120"`
	Description string `json:"description"`
	PointCost   int    `json:"pointCost" validate:"min=0"`
	Stock       int    `json:"stock" validate:"min=0"`
}
