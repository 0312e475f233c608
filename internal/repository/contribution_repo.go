package repository

import (
	"ProductLobby/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// UserEngagement 单个用户在某活动下的聚合行为统计，分群判定的输入
type UserEngagement struct {
	UserID          uint64
	TotalEvents     int
	EventsLast7Days int
	PreferenceCount int
	ShareCount      int
	FirstEventAt    time.Time
	LastEventAt     time.Time
}

type ContributionRepo interface {
	CreateEvent(ctx context.Context, event *model.ContributionEvent) error
	ExistsEvent(ctx context.Context, userID, campaignID uint64, eventType string) (bool, error)
	CountEvents(ctx context.Context, campaignID uint64, eventType string) (int64, error)
	CountEventsInWindow(ctx context.Context, campaignID uint64, eventType string, from, to time.Time) (int64, error)
	CountUniqueContributors(ctx context.Context, campaignID uint64) (int64, error)
	GetUserEngagements(ctx context.Context, campaignID uint64, now time.Time) ([]*UserEngagement, error)
	CountEventsByUser(ctx context.Context, userID, campaignID uint64) (int64, error)
}

type contributionRepoImpl struct {
	db *gorm.DB
}

func NewContributionRepo(db *gorm.DB) ContributionRepo {
	return &contributionRepoImpl{db: db}
}

func (r *contributionRepoImpl) CreateEvent(ctx context.Context, event *model.ContributionEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *contributionRepoImpl) ExistsEvent(ctx context.Context, userID, campaignID uint64, eventType string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ContributionEvent{}).
		Where("user_id = ? AND campaign_id = ? AND event_type = ?", userID, campaignID, eventType).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountEvents 统计某活动下指定类型事件的总量，eventType 为空串表示全部类型
func (r *contributionRepoImpl) CountEvents(ctx context.Context, campaignID uint64, eventType string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.ContributionEvent{}).
		Where("campaign_id = ?", campaignID)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *contributionRepoImpl) CountEventsInWindow(ctx context.Context, campaignID uint64, eventType string, from, to time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.ContributionEvent{}).
		Where("campaign_id = ?", campaignID).
		Where("created_at >= ? AND created_at < ?", from, to)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *contributionRepoImpl) CountUniqueContributors(ctx context.Context, campaignID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ContributionEvent{}).
		Where("campaign_id = ?", campaignID).
		Distinct("user_id").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetUserEngagements 载入活动的全部事件并按用户聚合行为统计
// 时间戳经模型列扫描，聚合在内存完成，不依赖驱动对聚合列的类型推断
func (r *contributionRepoImpl) GetUserEngagements(ctx context.Context, campaignID uint64, now time.Time) ([]*UserEngagement, error) {
	events := make([]*model.ContributionEvent, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("user_id ASC, created_at ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	byUser := make(map[uint64]*UserEngagement)
	engagements := make([]*UserEngagement, 0)
	for _, event := range events {
		e, ok := byUser[event.UserID]
		if !ok {
			e = &UserEngagement{
				UserID:       event.UserID,
				FirstEventAt: event.CreatedAt,
				LastEventAt:  event.CreatedAt,
			}
			byUser[event.UserID] = e
			engagements = append(engagements, e)
		}

		e.TotalEvents++
		if !event.CreatedAt.Before(sevenDaysAgo) {
			e.EventsLast7Days++
		}
		switch event.EventType {
		case model.EventTypePreferenceSubmitted:
			e.PreferenceCount++
		case model.EventTypeShare, model.EventTypeSocialShare:
			e.ShareCount++
		}
		if event.CreatedAt.Before(e.FirstEventAt) {
			e.FirstEventAt = event.CreatedAt
		}
		if event.CreatedAt.After(e.LastEventAt) {
			e.LastEventAt = event.CreatedAt
		}
	}
	return engagements, nil
}

func (r *contributionRepoImpl) CountEventsByUser(ctx context.Context, userID, campaignID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ContributionEvent{}).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
