package repository

import (
	"ProductLobby/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BrandRepo interface {
	CreateBrand(ctx context.Context, brand *model.Brand) error
	GetBrand(ctx context.Context, id uint64) (*model.Brand, error)
	GetBrandByOwner(ctx context.Context, ownerID uint64) (*model.Brand, error)
	ListBrandsWithListening(ctx context.Context) ([]*model.Brand, error)
	UpsertResponse(ctx context.Context, response *model.BrandResponse) error
	GetResponseByCampaign(ctx context.Context, campaignID uint64) (*model.BrandResponse, error)
}

type brandRepoImpl struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) BrandRepo {
	return &brandRepoImpl{db: db}
}

func (r *brandRepoImpl) CreateBrand(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepoImpl) GetBrand(ctx context.Context, id uint64) (*model.Brand, error) {
	brand := &model.Brand{}
	result := r.db.WithContext(ctx).First(brand, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return brand, nil
}

func (r *brandRepoImpl) GetBrandByOwner(ctx context.Context, ownerID uint64) (*model.Brand, error) {
	brand := &model.Brand{}
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(brand)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return brand, nil
}

func (r *brandRepoImpl) ListBrandsWithListening(ctx context.Context) ([]*model.Brand, error) {
	brands := make([]*model.Brand, 0)
	result := r.db.WithContext(ctx).
		Where("listening_urls IS NOT NULL AND listening_urls != ''").
		Find(&brands)
	if result.Error != nil {
		return nil, result.Error
	}
	return brands, nil
}

func (r *brandRepoImpl) UpsertResponse(ctx context.Context, response *model.BrandResponse) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "brand_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "message"}),
	}).Create(response).Error
}

func (r *brandRepoImpl) GetResponseByCampaign(ctx context.Context, campaignID uint64) (*model.BrandResponse, error) {
	response := &model.BrandResponse{}
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("updated_at DESC").
		First(response)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return response, nil
}
