package dto

import "time"

// CampaignDTO 活动
type CampaignDTO struct {
	ID          uint64     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatorID   uint64     `json:"creator_id"`
	BrandID     *uint64    `json:"brand_id,omitempty"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// CampaignCreateDTO 创建活动
type CampaignCreateDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=4,max=120"`
	Description string  `json:"description" validate:"max=5000"`
	BrandID     *uint64 `json:"brand_id"`
}

// CampaignUpdateDTO 更新活动文案
type CampaignUpdateDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=4,max=120"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// CampaignStatusDTO 状态流转
type CampaignStatusDTO struct {
	Status string `json:"status" binding:"required" validate:"oneof=draft live paused closed"`
}

// CampaignListDTO 活动列表查询
type CampaignListDTO struct {
	PageQuery
	Status string `form:"status" validate:"omitempty,oneof=draft live paused closed"`
}

// CampaignSearchDTO 活动搜索
type CampaignSearchDTO struct {
	PageQuery
	Keyword string `form:"keyword" binding:"required"`
}
