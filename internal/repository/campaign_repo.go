package repository

import (
	"ProductLobby/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CampaignRepo interface {
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error)
	GetCampaignBySlug(ctx context.Context, slug string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, status string, page, pageSize int) ([]*model.Campaign, error)
	ListCampaignsByCreator(ctx context.Context, creatorID uint64) ([]*model.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *model.Campaign) error
	UpdateCampaignStatus(ctx context.Context, id uint64, status string) error
	UpdateCoverURL(ctx context.Context, id uint64, coverURL string) error
	ExistsSlug(ctx context.Context, slug string) (bool, error)
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepo {
	return &campaignRepoImpl{db: db}
}

func (r *campaignRepoImpl) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepoImpl) GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error) {
	campaign := &model.Campaign{}
	result := r.db.WithContext(ctx).First(campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return campaign, nil
}

func (r *campaignRepoImpl) GetCampaignBySlug(ctx context.Context, slug string) (*model.Campaign, error) {
	campaign := &model.Campaign{}
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(campaign)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return campaign, nil
}

func (r *campaignRepoImpl) ListCampaigns(ctx context.Context, status string, page, pageSize int) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)
	query := r.db.WithContext(ctx).Model(&model.Campaign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	result := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

func (r *campaignRepoImpl) ListCampaignsByCreator(ctx context.Context, creatorID uint64) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)
	result := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

func (r *campaignRepoImpl) UpdateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", campaign.ID).
		Updates(campaign).Error
}

func (r *campaignRepoImpl) UpdateCampaignStatus(ctx context.Context, id uint64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *campaignRepoImpl) UpdateCoverURL(ctx context.Context, id uint64, coverURL string) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("cover_url", coverURL).Error
}

func (r *campaignRepoImpl) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("slug = ?", slug).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
