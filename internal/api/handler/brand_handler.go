package handler

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/pkg/response"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandSvc service.BrandService
}

func NewBrandHandler(brandSvc service.BrandService) *BrandHandler {
	return &BrandHandler{
		brandSvc: brandSvc,
	}
}

// RegisterBrand 注册品牌
func (s *BrandHandler) RegisterBrand(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.BrandCreateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	brand, err := s.brandSvc.RegisterBrand(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, brand)
}

// GetBrand 获取品牌
func (s *BrandHandler) GetBrand(c *gin.Context) {
	brandID, err := strconv.ParseUint(c.Param("brand_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brand, err := s.brandSvc.GetBrand(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, brand)
}

// GetMyBrand 获取当前用户拥有的品牌
func (s *BrandHandler) GetMyBrand(c *gin.Context) {
	userID := c.GetUint64("user_id")
	brand, err := s.brandSvc.GetMyBrand(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, brand)
}

// RespondToCampaign 品牌回应活动
func (s *BrandHandler) RespondToCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseCampaignID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BrandRespondDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err = s.brandSvc.RespondToCampaign(c.Request.Context(), campaignID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
