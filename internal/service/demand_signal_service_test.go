package service

import (
	"context"
	"testing"
	"time"

	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/testutil"
	"ProductLobby/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDemandSignalService(t *testing.T) (DemandSignalService, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t,
		&model.Campaign{},
		&model.ContributionEvent{},
		&model.Brand{},
		&model.BrandResponse{},
	)
	svc := NewDemandSignalService(
		repository.NewCampaignRepo(db),
		repository.NewContributionRepo(db),
		repository.NewBrandRepo(db),
	)
	return svc, db
}

func seedEvents(t *testing.T, db *gorm.DB, campaignID uint64, eventType string, count int, at time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, db.Create(&model.ContributionEvent{
			UserID:     uint64(i + 1),
			CampaignID: campaignID,
			EventType:  eventType,
			CreatedAt:  at,
		}).Error)
	}
}

func TestGetDemandSignal_CampaignNotFound(t *testing.T) {
	svc, _ := newDemandSignalService(t)

	_, err := svc.GetDemandSignal(context.Background(), 999, 1)
	require.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetDemandSignal_PermissionDenied(t *testing.T) {
	svc, db := newDemandSignalService(t)

	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "save-the-flavor", Title: "Save the Flavor",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)

	_, err := svc.GetDemandSignal(context.Background(), 1, 99)
	require.ErrorIs(t, err, UnauthorizedError)
}

func TestGetDemandSignal_BrandOwnerCanView(t *testing.T) {
	svc, db := newDemandSignalService(t)

	brandID := uint64(7)
	require.NoError(t, db.Create(&model.Brand{ID: brandID, Name: "Acme", OwnerID: 42}).Error)
	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "bring-it-back", Title: "Bring It Back",
		Status: model.CampaignStatusLive, CreatorID: 10, BrandID: &brandID,
	}).Error)

	signal, err := svc.GetDemandSignal(context.Background(), 1, 42)
	require.NoError(t, err)
	require.Equal(t, uint64(1), signal.CampaignID)
}

func TestGetDemandSignal_EmptyCampaignScoresZero(t *testing.T) {
	svc, db := newDemandSignalService(t)

	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "empty", Title: "Empty",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)

	signal, err := svc.GetDemandSignal(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, 0, signal.DemandScore)
	require.Equal(t, int64(0), signal.TotalLobbies)
	require.False(t, signal.IsNew)
	require.Equal(t, model.BrandResponseNone, signal.BrandResponseStatus)
}

func TestGetDemandSignal_Aggregates(t *testing.T) {
	svc, db := newDemandSignalService(t)

	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "keep-it-alive", Title: "Keep It Alive",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)

	now := time.Now()
	seedEvents(t, db, 1, model.EventTypeSupport, 4, now.AddDate(0, 0, -2))
	seedEvents(t, db, 1, model.EventTypeSupport, 2, now.AddDate(0, 0, -10))
	seedEvents(t, db, 1, model.EventTypeComment, 3, now.AddDate(0, 0, -1))

	signal, err := svc.GetDemandSignal(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(6), signal.TotalLobbies)
	require.Equal(t, int64(4), signal.LobbiesLastSevenDays)
	require.Equal(t, int64(2), signal.LobbiesPreviousSevenDays)
	require.Equal(t, 100.0, signal.GrowthRate)
	require.False(t, signal.IsNew)
	require.Equal(t, int64(3), signal.CommentCount)
	// seedEvents 的用户编号按调用各自从 1 开始，去重后为 4 人
	require.Equal(t, int64(4), signal.UniqueContributorCount)
	require.Len(t, signal.Breakdown, 4)
	require.Greater(t, signal.DemandScore, 0)
	require.LessOrEqual(t, signal.DemandScore, 100)
}

func TestGetDemandSignal_NewCampaignFlagged(t *testing.T) {
	svc, db := newDemandSignalService(t)

	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "fresh", Title: "Fresh",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)
	seedEvents(t, db, 1, model.EventTypeSupport, 3, time.Now().AddDate(0, 0, -1))

	signal, err := svc.GetDemandSignal(context.Background(), 1, 10)
	require.NoError(t, err)
	require.True(t, signal.IsNew)
	require.Equal(t, 0.0, signal.GrowthRate)
}

func TestGetDemandSignal_BrandResponseStatus(t *testing.T) {
	svc, db := newDemandSignalService(t)

	brandID := uint64(7)
	require.NoError(t, db.Create(&model.Brand{ID: brandID, Name: "Acme", OwnerID: 42}).Error)
	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "revive", Title: "Revive",
		Status: model.CampaignStatusLive, CreatorID: 10, BrandID: &brandID,
	}).Error)
	require.NoError(t, db.Create(&model.BrandResponse{
		CampaignID: 1, BrandID: brandID, Status: model.BrandResponseCommitted,
	}).Error)

	signal, err := svc.GetDemandSignal(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, model.BrandResponseCommitted, signal.BrandResponseStatus)
}
