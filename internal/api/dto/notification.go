package dto

import "time"

// NotificationDTO 通知收件箱条目
type NotificationDTO struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	CampaignID uint64    `json:"campaign_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotificationMarkReadDTO 标记已读
type NotificationMarkReadDTO struct {
	IDs []string `json:"ids" binding:"required"`
}
