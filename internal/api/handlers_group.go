package api

import "ProductLobby/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	CampaignHandler     *handler.CampaignHandler
	ContributionHandler *handler.ContributionHandler
	InsightHandler      *handler.InsightHandler
	SegmentHandler      *handler.SegmentHandler
	RewardHandler       *handler.RewardHandler
	BrandHandler        *handler.BrandHandler
	NotificationHandler *handler.NotificationHandler
}
