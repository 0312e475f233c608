package service

import (
	"context"
	"testing"
	"time"

	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/segment"
	"ProductLobby/internal/pkg/testutil"
	"ProductLobby/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSegmentService(t *testing.T) (SegmentService, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t,
		&model.Campaign{},
		&model.ContributionEvent{},
		&model.CustomSegment{},
	)
	svc := NewSegmentService(
		repository.NewCampaignRepo(db),
		repository.NewContributionRepo(db),
		repository.NewSegmentRepo(db),
	)
	return svc, db
}

func seedSegmentCampaign(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "demo", Title: "Demo",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)
}

func TestGetSegments_PredefinedAlwaysPresent(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	segments, err := svc.GetSegments(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, segments, 5)

	ids := make([]string, 0, len(segments))
	for _, s := range segments {
		ids = append(ids, s.ID)
		require.False(t, s.Custom)
		require.Equal(t, 0, s.MemberCount)
	}
	require.Contains(t, ids, "power-users")
	require.Contains(t, ids, "new-supporters")
	require.Contains(t, ids, "dormant")
	require.Contains(t, ids, "top-voters")
	require.Contains(t, ids, "social-sharers")
}

func TestGetSegments_OnlyCreator(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	_, err := svc.GetSegments(context.Background(), 1, 99)
	require.ErrorIs(t, err, ErrNotCampaignCreator)
}

func TestGetSegments_PredefinedMembership(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	now := time.Now()
	// 用户 1：最近 7 天 6 次行为，既是核心用户也是新支持者
	for i := 0; i < 6; i++ {
		require.NoError(t, db.Create(&model.ContributionEvent{
			UserID: 1, CampaignID: 1, EventType: model.EventTypeSupport,
			CreatedAt: now.AddDate(0, 0, -1),
		}).Error)
	}
	// 用户 2：90 天前最后一次行为，属于沉睡用户
	require.NoError(t, db.Create(&model.ContributionEvent{
		UserID: 2, CampaignID: 1, EventType: model.EventTypeShare,
		CreatedAt: now.AddDate(0, 0, -90),
	}).Error)

	segments, err := svc.GetSegments(context.Background(), 1, 10)
	require.NoError(t, err)

	byID := make(map[string]*dto.AudienceSegmentDTO, len(segments))
	for _, s := range segments {
		byID[s.ID] = s
	}
	require.Equal(t, 1, byID["power-users"].MemberCount)
	require.Equal(t, 1, byID["new-supporters"].MemberCount)
	require.Equal(t, 1, byID["dormant"].MemberCount)
	require.Equal(t, 0, byID["top-voters"].MemberCount)
	require.Equal(t, 1, byID["social-sharers"].MemberCount)
	require.Greater(t, byID["power-users"].ActivityScore, 0)
}

func TestCreateSegment_InvalidRulesRejected(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	_, err := svc.CreateSegment(context.Background(), 1, 10, &dto.SegmentCreateDTO{
		Name:  "bad",
		Rules: []segment.Rule{{Field: "password", Operator: "gt", Value: 1}},
	})
	require.ErrorIs(t, err, ErrSegmentRulesInvalid)
}

func TestCreateSegment_OnlyCreator(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	_, err := svc.CreateSegment(context.Background(), 1, 99, &dto.SegmentCreateDTO{
		Name:  "high rollers",
		Rules: []segment.Rule{{Field: "total_events", Operator: "gte", Value: 3}},
	})
	require.ErrorIs(t, err, ErrNotCampaignCreator)
}

func TestCreateSegment_EvaluatesMembers(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	now := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&model.ContributionEvent{
			UserID: 1, CampaignID: 1, EventType: model.EventTypeSupport,
			CreatedAt: now.AddDate(0, 0, -1),
		}).Error)
	}
	require.NoError(t, db.Create(&model.ContributionEvent{
		UserID: 2, CampaignID: 1, EventType: model.EventTypeSupport,
		CreatedAt: now.AddDate(0, 0, -1),
	}).Error)

	created, err := svc.CreateSegment(context.Background(), 1, 10, &dto.SegmentCreateDTO{
		Name:        "committed",
		Description: "3 次以上行为的用户",
		Rules:       []segment.Rule{{Field: "total_events", Operator: "gte", Value: 3}},
	})
	require.NoError(t, err)
	require.True(t, created.Custom)
	require.Equal(t, 1, created.MemberCount)
	require.Len(t, created.Rules, 1)

	// 自定义分群出现在分群列表中
	segments, err := svc.GetSegments(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, segments, 6)
}

func TestDeleteSegment(t *testing.T) {
	svc, db := newSegmentService(t)
	seedSegmentCampaign(t, db)

	created, err := svc.CreateSegment(context.Background(), 1, 10, &dto.SegmentCreateDTO{
		Name:  "temp",
		Rules: []segment.Rule{{Field: "share_count", Operator: "gte", Value: 1}},
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteSegment(context.Background(), 1, 999, 10), ErrSegmentNotFound)
	require.ErrorIs(t, svc.DeleteSegment(context.Background(), 1, 1, 99), ErrNotCampaignCreator)

	var stored model.CustomSegment
	require.NoError(t, db.Where("name = ?", created.Name).First(&stored).Error)
	require.NoError(t, svc.DeleteSegment(context.Background(), 1, stored.ID, 10))

	segments, err := svc.GetSegments(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, segments, 5)
}
