package handler

import (
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/service"

	"github.com/gin-gonic/gin"
)

// InsightHandler 需求信号与趋势数据接口
type InsightHandler struct {
	demandSignalSvc   service.DemandSignalService
	campaignMetricSvc service.CampaignMetricService
}

func NewInsightHandler(demandSignalSvc service.DemandSignalService, campaignMetricSvc service.CampaignMetricService) *InsightHandler {
	return &InsightHandler{
		demandSignalSvc:   demandSignalSvc,
		campaignMetricSvc: campaignMetricSvc,
	}
}

// GetDemandSignal 获取活动需求信号快照
func (s *InsightHandler) GetDemandSignal(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	signal, err := s.demandSignalSvc.GetDemandSignal(c.Request.Context(), campaignID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, signal)
}

// GetTrend7Days 获取活动 7 天趋势
func (s *InsightHandler) GetTrend7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	trend, err := s.campaignMetricSvc.GetCampaignMetricsBy7Days(c.Request.Context(), campaignID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

// GetTrend30Days 获取活动 30 天趋势
func (s *InsightHandler) GetTrend30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	trend, err := s.campaignMetricSvc.GetCampaignMetricsBy30Days(c.Request.Context(), campaignID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
