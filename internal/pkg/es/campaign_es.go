package es

import "time"

// CampaignES 写入 ES 的活动文档
type CampaignES struct {
	ID           uint64    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatorID    uint64    `json:"creator_id"`
	BrandID      uint64    `json:"brand_id"`
	CoverURL     string    `json:"cover_url"`
	LobbiesCount int       `json:"lobbies_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
