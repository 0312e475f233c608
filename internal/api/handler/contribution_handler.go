package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/service"

	"github.com/gin-gonic/gin"
)

type ContributionHandler struct {
	contributionSvc service.ContributionService
}

func NewContributionHandler(contributionSvc service.ContributionService) *ContributionHandler {
	return &ContributionHandler{
		contributionSvc: contributionSvc,
	}
}

// RecordContribution 记录一次用户行为事件
func (s *ContributionHandler) RecordContribution(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ContributionCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	err = s.contributionSvc.RecordContribution(c.Request.Context(), campaignID, userID, req.EventType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetLeaderboard 获取活动贡献排行榜
func (s *ContributionHandler) GetLeaderboard(c *gin.Context) {
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := s.contributionSvc.GetLeaderboard(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
