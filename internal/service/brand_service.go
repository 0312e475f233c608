package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/mongo"
	"ProductLobby/internal/repository"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type BrandService interface {
	// RegisterBrand 注册品牌，每个用户至多拥有一个品牌
	RegisterBrand(ctx context.Context, ownerID uint64, req *dto.BrandCreateDTO) (*dto.BrandDTO, error)
	GetBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error)
	GetMyBrand(ctx context.Context, ownerID uint64) (*dto.BrandDTO, error)
	// RespondToCampaign 品牌对面向它的活动作出官方回应，活动创建者收到通知
	RespondToCampaign(ctx context.Context, campaignID uint64, userID uint64, req *dto.BrandRespondDTO) error
}

type brandServiceImpl struct {
	brandRepo        repository.BrandRepo
	campaignRepo     repository.CampaignRepo
	notificationRepo mongo.NotificationRepo
}

func NewBrandService(
	brandRepo repository.BrandRepo,
	campaignRepo repository.CampaignRepo,
	notificationRepo mongo.NotificationRepo,
) BrandService {
	return &brandServiceImpl{
		brandRepo:        brandRepo,
		campaignRepo:     campaignRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *brandServiceImpl) RegisterBrand(ctx context.Context, ownerID uint64, req *dto.BrandCreateDTO) (*dto.BrandDTO, error) {
	existing, err := s.brandRepo.GetBrandByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBrandExist
	}

	brand := &model.Brand{
		Name:          req.Name,
		OwnerID:       ownerID,
		ListeningURLs: req.ListeningURLs,
	}
	if err = s.brandRepo.CreateBrand(ctx, brand); err != nil {
		return nil, err
	}
	return buildBrandDTO(brand), nil
}

func (s *brandServiceImpl) GetBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error) {
	brand, err := s.brandRepo.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}
	return buildBrandDTO(brand), nil
}

func (s *brandServiceImpl) GetMyBrand(ctx context.Context, ownerID uint64) (*dto.BrandDTO, error) {
	brand, err := s.brandRepo.GetBrandByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}
	return buildBrandDTO(brand), nil
}

func (s *brandServiceImpl) RespondToCampaign(ctx context.Context, campaignID uint64, userID uint64, req *dto.BrandRespondDTO) error {
	brand, err := s.brandRepo.GetBrandByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrNotBrandOwner
	}

	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	// 只能回应面向自己品牌的活动
	if campaign.BrandID == nil || *campaign.BrandID != brand.ID {
		return ErrNotBrandOwner
	}

	if err = s.brandRepo.UpsertResponse(ctx, &model.BrandResponse{
		CampaignID: campaignID,
		BrandID:    brand.ID,
		Status:     req.Status,
		Message:    req.Message,
	}); err != nil {
		return err
	}

	msg := &mongo.NotificationModel{
		ReceiverID: campaign.CreatorID,
		Kind:       mongo.NotificationKindBrandResponse,
		CampaignID: campaignID,
		Title:      "品牌已回应",
		Body:       fmt.Sprintf("品牌「%s」对活动「%s」作出了回应：%s", brand.Name, campaign.Title, req.Status),
		Payload:    map[string]any{"status": req.Status},
		CreatedAt:  time.Now(),
	}
	if err = s.notificationRepo.CreateNotification(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "create notification failed", "campaign_id", campaignID, "err", err)
	}
	return nil
}

func buildBrandDTO(brand *model.Brand) *dto.BrandDTO {
	return &dto.BrandDTO{
		ID:            brand.ID,
		Name:          brand.Name,
		OwnerID:       brand.OwnerID,
		LogoURL:       brand.LogoURL,
		ListeningURLs: brand.ListeningURLs,
	}
}
