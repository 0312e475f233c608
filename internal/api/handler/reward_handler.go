package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/service"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardSvc service.RewardService
}

func NewRewardHandler(rewardSvc service.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardSvc: rewardSvc,
	}
}

// GetRewardCatalog 获取活动奖励目录及当前用户账户状态
func (s *RewardHandler) GetRewardCatalog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	catalog, err := s.rewardSvc.GetRewardCatalog(c.Request.Context(), campaignID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, catalog)
}

// CreateReward 活动创建者添加奖励
func (s *RewardHandler) CreateReward(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RewardCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	reward, err := s.rewardSvc.CreateReward(c.Request.Context(), campaignID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reward)
}

// ClaimReward 积分兑换奖励
func (s *RewardHandler) ClaimReward(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RewardClaimDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	err = s.rewardSvc.ClaimReward(c.Request.Context(), campaignID, userID, req.RewardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	status, err := s.rewardSvc.GetRewardStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// GetRewardStatus 获取当前用户的积分账户状态
func (s *RewardHandler) GetRewardStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")
	status, err := s.rewardSvc.GetRewardStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}
