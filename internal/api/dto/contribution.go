package dto

// ContributionCreateDTO 记录一次用户行为事件
type ContributionCreateDTO struct {
	EventType string `json:"event_type" binding:"required" validate:"oneof=support comment share preference_submitted social_share contribution"`
}

// LeaderboardEntryDTO 活动贡献排行榜条目
type LeaderboardEntryDTO struct {
	UserID      uint64 `json:"user_id"`
	DisplayName string `json:"display_name"`
	Rank        int    `json:"rank"`
	EventCount  int64  `json:"event_count"`
}
