package repository

import (
	"context"
	"testing"
	"time"

	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func TestGetUserEngagements(t *testing.T) {
	db := testutil.NewTestDB(t, &model.ContributionEvent{})
	repo := NewContributionRepo(db)
	now := time.Now()

	seed := []*model.ContributionEvent{
		{UserID: 1, CampaignID: 1, EventType: model.EventTypeSupport, CreatedAt: now.AddDate(0, 0, -30)},
		{UserID: 1, CampaignID: 1, EventType: model.EventTypePreferenceSubmitted, CreatedAt: now.AddDate(0, 0, -3)},
		{UserID: 1, CampaignID: 1, EventType: model.EventTypeShare, CreatedAt: now.AddDate(0, 0, -1)},
		{UserID: 2, CampaignID: 1, EventType: model.EventTypeSocialShare, CreatedAt: now.AddDate(0, 0, -10)},
		// 其他活动的事件不参与聚合
		{UserID: 1, CampaignID: 2, EventType: model.EventTypeSupport, CreatedAt: now},
	}
	for _, event := range seed {
		require.NoError(t, db.Create(event).Error)
	}

	engagements, err := repo.GetUserEngagements(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, engagements, 2)

	byUser := make(map[uint64]*UserEngagement, len(engagements))
	for _, e := range engagements {
		byUser[e.UserID] = e
	}

	first := byUser[1]
	require.Equal(t, 3, first.TotalEvents)
	require.Equal(t, 2, first.EventsLast7Days)
	require.Equal(t, 1, first.PreferenceCount)
	require.Equal(t, 1, first.ShareCount)
	require.WithinDuration(t, now.AddDate(0, 0, -30), first.FirstEventAt, time.Second)
	require.WithinDuration(t, now.AddDate(0, 0, -1), first.LastEventAt, time.Second)

	second := byUser[2]
	require.Equal(t, 1, second.TotalEvents)
	require.Equal(t, 0, second.EventsLast7Days)
	require.Equal(t, 1, second.ShareCount)
	require.WithinDuration(t, now.AddDate(0, 0, -10), second.FirstEventAt, time.Second)
	require.WithinDuration(t, now.AddDate(0, 0, -10), second.LastEventAt, time.Second)
}

func TestGetUserEngagements_NoEvents(t *testing.T) {
	db := testutil.NewTestDB(t, &model.ContributionEvent{})
	repo := NewContributionRepo(db)

	engagements, err := repo.GetUserEngagements(context.Background(), 1, time.Now())
	require.NoError(t, err)
	require.Empty(t, engagements)
}
