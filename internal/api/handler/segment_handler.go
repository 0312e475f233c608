package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SegmentHandler struct {
	segmentSvc service.SegmentService
}

func NewSegmentHandler(segmentSvc service.SegmentService) *SegmentHandler {
	return &SegmentHandler{
		segmentSvc: segmentSvc,
	}
}

// GetSegments 获取活动的全部受众分群
func (s *SegmentHandler) GetSegments(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	segments, err := s.segmentSvc.GetSegments(c.Request.Context(), campaignID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, segments)
}

// CreateSegment 创建自定义分群
func (s *SegmentHandler) CreateSegment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SegmentCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	segment, err := s.segmentSvc.CreateSegment(c.Request.Context(), campaignID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, segment)
}

// DeleteSegment 删除自定义分群
func (s *SegmentHandler) DeleteSegment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	segmentID, err := strconv.ParseUint(c.Param("segment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.segmentSvc.DeleteSegment(c.Request.Context(), campaignID, segmentID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
