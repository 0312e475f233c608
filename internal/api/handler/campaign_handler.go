package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignSvc: campaignSvc,
	}
}

func (s *CampaignHandler) CreateCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CampaignCreateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	campaign, err := s.campaignSvc.CreateCampaign(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	campaign, err := s.campaignSvc.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) GetCampaignBySlug(c *gin.Context) {
	campaign, err := s.campaignSvc.GetCampaignBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) ListCampaigns(c *gin.Context) {
	var req dto.CampaignListDTO
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	campaigns, err := s.campaignSvc.ListCampaigns(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

func (s *CampaignHandler) ListMyCampaigns(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaigns, err := s.campaignSvc.ListMyCampaigns(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

func (s *CampaignHandler) UpdateCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CampaignUpdateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.campaignSvc.UpdateCampaign(c.Request.Context(), campaignID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) ChangeStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CampaignStatusDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	err = s.campaignSvc.ChangeStatus(c.Request.Context(), campaignID, userID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) UploadCover(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	coverURL, err := s.campaignSvc.UploadCover(c.Request.Context(), campaignID, userID, file, fileHeader.Size, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{"cover_url": coverURL})
}

func (s *CampaignHandler) SearchCampaigns(c *gin.Context) {
	var req dto.CampaignSearchDTO
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	campaigns, err := s.campaignSvc.SearchCampaigns(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

func (s *CampaignHandler) GetSuggestions(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Success(c, []string{})
		return
	}
	suggestions, err := s.campaignSvc.GetSuggestions(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, suggestions)
}

// parseCampaignID 解析路径参数中的活动 ID
func parseCampaignID(c *gin.Context) (uint64, error) {
	campaignID, err := strconv.ParseUint(c.Param("campaign_id"), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return campaignID, nil
}
