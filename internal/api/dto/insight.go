package dto

// ComponentScores 需求得分的四个分项，各自归一化到 [0,100]
type ComponentScores struct {
	Lobbies      int `json:"lobbies"`
	Growth       int `json:"growth"`
	Comments     int `json:"comments"`
	Contributors int `json:"contributors"`
}

// DemandSignalDTO 活动需求信号快照，字段名与前端洞察页约定保持一致
type DemandSignalDTO struct {
	CampaignID               uint64               `json:"campaignId"`
	CampaignTitle            string               `json:"campaignTitle"`
	TotalLobbies             int64                `json:"totalLobbies"`
	LobbiesLastSevenDays     int64                `json:"lobbiesLastSevenDays"`
	LobbiesPreviousSevenDays int64                `json:"lobbiesPreviousSevenDays"`
	GrowthRate               float64              `json:"growthRate"`
	IsNew                    bool                 `json:"isNew"`
	CommentCount             int64                `json:"commentCount"`
	UniqueContributorCount   int64                `json:"uniqueContributorCount"`
	BrandResponseStatus      string               `json:"brandResponseStatus"`
	DemandScore              int                  `json:"demandScore"`
	ComponentScores          ComponentScores      `json:"componentScores"`
	Breakdown                []*ScoreBreakdownDTO `json:"breakdown"`
}

// ScoreBreakdownDTO 单个分项的得分拆解
type ScoreBreakdownDTO struct {
	Component string  `json:"component"`
	RawValue  int64   `json:"rawValue"`
	Score     int     `json:"score"`
	Weight    float64 `json:"weight"`
}

// CampaignMetricDTO 活动指标趋势点
type CampaignMetricDTO struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// CampaignTrendDTO 活动趋势返回包装
type CampaignTrendDTO struct {
	CampaignID   uint64               `json:"campaign_id"`
	Days         int                  `json:"days"` // 7 或 30
	Lobbies      []*CampaignMetricDTO `json:"lobbies"`
	Comments     []*CampaignMetricDTO `json:"comments"`
	Shares       []*CampaignMetricDTO `json:"shares"`
	Contributors []*CampaignMetricDTO `json:"contributors"`
}
