package dto

import "ProductLobby/internal/pkg/segment"

// AudienceSegmentDTO 受众分群，预定义分群与自定义分群共用同一结构
type AudienceSegmentDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	MemberCount   int              `json:"memberCount"`
	ActivityScore int              `json:"activityScore"`
	Criteria      []string         `json:"criteria"`
	Stats         *SegmentStatsDTO `json:"stats,omitempty"`
	Custom        bool             `json:"custom"`
	Rules         []segment.Rule   `json:"rules,omitempty"`
}

// SegmentStatsDTO 分群成员的聚合统计
type SegmentStatsDTO struct {
	AvgEventsPerMember float64 `json:"avgEventsPerMember"`
	TotalEvents        int     `json:"totalEvents"`
}

// SegmentCreateDTO 创建自定义分群
type SegmentCreateDTO struct {
	Name        string         `json:"name" binding:"required" validate:"min=1,max=120"`
	Description string         `json:"description"`
	Rules       []segment.Rule `json:"rules" binding:"required"`
}
