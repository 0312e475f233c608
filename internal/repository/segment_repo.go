package repository

import (
	"ProductLobby/internal/model"
	"context"

	"gorm.io/gorm"
)

type SegmentRepo interface {
	CreateCustomSegment(ctx context.Context, segment *model.CustomSegment) error
	ListCustomSegmentsByCampaign(ctx context.Context, campaignID uint64) ([]*model.CustomSegment, error)
	DeleteCustomSegment(ctx context.Context, id uint64, campaignID uint64) (int64, error)
}

type segmentRepoImpl struct {
	db *gorm.DB
}

func NewSegmentRepo(db *gorm.DB) SegmentRepo {
	return &segmentRepoImpl{db: db}
}

func (r *segmentRepoImpl) CreateCustomSegment(ctx context.Context, segment *model.CustomSegment) error {
	return r.db.WithContext(ctx).Create(segment).Error
}

func (r *segmentRepoImpl) ListCustomSegmentsByCampaign(ctx context.Context, campaignID uint64) ([]*model.CustomSegment, error) {
	segments := make([]*model.CustomSegment, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&segments)
	if result.Error != nil {
		return nil, result.Error
	}
	return segments, nil
}

func (r *segmentRepoImpl) DeleteCustomSegment(ctx context.Context, id uint64, campaignID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND campaign_id = ?", id, campaignID).
		Delete(&model.CustomSegment{})
	return result.RowsAffected, result.Error
}
