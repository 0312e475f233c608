package repository

import (
	"ProductLobby/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CampaignMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.CampaignMetric) error
	GetCampaignMetricsBy7Days(ctx context.Context, campaignID uint64) ([]*model.CampaignMetric, error)
	GetCampaignMetricsBy30Days(ctx context.Context, campaignID uint64) ([]*model.CampaignMetric, error)
	GetLatestMetricBefore(ctx context.Context, campaignID uint64, date time.Time) (*model.CampaignMetric, error)
}

type campaignMetricRepoImpl struct {
	db *gorm.DB
}

func NewCampaignMetricRepo(db *gorm.DB) CampaignMetricRepo {
	return &campaignMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 campaign_id + metric_date 已存在，则更新各项数值
func (r *campaignMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.CampaignMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_lobbies",
			"total_comments",
			"total_shares",
			"total_contributors",
		}),
	}).Create(metric).Error
}

// GetCampaignMetricsBy7Days 获取活动最近 7 天的趋势数据
func (r *campaignMetricRepoImpl) GetCampaignMetricsBy7Days(ctx context.Context, campaignID uint64) ([]*model.CampaignMetric, error) {
	return r.getMetricsSince(ctx, campaignID, time.Now().AddDate(0, 0, -7))
}

// GetCampaignMetricsBy30Days 获取活动最近 30 天的趋势数据
func (r *campaignMetricRepoImpl) GetCampaignMetricsBy30Days(ctx context.Context, campaignID uint64) ([]*model.CampaignMetric, error) {
	return r.getMetricsSince(ctx, campaignID, time.Now().AddDate(0, 0, -30))
}

func (r *campaignMetricRepoImpl) getMetricsSince(ctx context.Context, campaignID uint64, since time.Time) ([]*model.CampaignMetric, error) {
	metrics := make([]*model.CampaignMetric, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Where("metric_date >= ?", since).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}

// GetLatestMetricBefore 获取指定日期前最近的一条指标记录（常用于计算增量）
func (r *campaignMetricRepoImpl) GetLatestMetricBefore(ctx context.Context, campaignID uint64, date time.Time) (*model.CampaignMetric, error) {
	var metric model.CampaignMetric
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND metric_date < ?", campaignID, date).
		Order("metric_date DESC").
		First(&metric).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}
