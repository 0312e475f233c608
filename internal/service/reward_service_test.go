package service

import (
	"context"
	"testing"

	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/testutil"
	"ProductLobby/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRewardService(t *testing.T) (RewardService, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t,
		&model.Campaign{},
		&model.Reward{},
		&model.RewardClaim{},
		&model.RewardAccount{},
	)
	svc := NewRewardService(
		repository.NewRewardRepo(db),
		repository.NewCampaignRepo(db),
		nil,
	)
	return svc, db
}

func seedRewardCampaign(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Campaign{
		ID: 1, Slug: "demo", Title: "Demo",
		Status: model.CampaignStatusLive, CreatorID: 10,
	}).Error)
}

func TestCreateReward_OnlyCreator(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)

	_, err := svc.CreateReward(context.Background(), 1, 99, &dto.RewardCreateDTO{
		Title: "贴纸", PointCost: 50, Stock: 10,
	})
	require.ErrorIs(t, err, ErrNotCampaignCreator)

	reward, err := svc.CreateReward(context.Background(), 1, 10, &dto.RewardCreateDTO{
		Title: "贴纸", PointCost: 50, Stock: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 10, reward.Remaining)
}

func TestClaimReward_InsufficientPoints(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)
	require.NoError(t, db.Create(&model.Reward{
		ID: 1, CampaignID: 1, Title: "贴纸", PointCost: 50, Stock: 10,
	}).Error)
	require.NoError(t, db.Create(&model.RewardAccount{UserID: 5, TotalPoints: 30}).Error)

	err := svc.ClaimReward(context.Background(), 1, 5, 1)
	require.ErrorIs(t, err, ErrPointsInsufficient)
}

func TestClaimReward_Success(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)
	require.NoError(t, db.Create(&model.Reward{
		ID: 1, CampaignID: 1, Title: "贴纸", PointCost: 50, Stock: 10,
	}).Error)
	require.NoError(t, db.Create(&model.RewardAccount{UserID: 5, TotalPoints: 120}).Error)

	require.NoError(t, svc.ClaimReward(context.Background(), 1, 5, 1))

	status, err := svc.GetRewardStatus(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 120, status.TotalPoints)
	require.Equal(t, 70, status.AvailablePoints)
	require.Len(t, status.ClaimedRewards, 1)
	require.Equal(t, "贴纸", status.ClaimedRewards[0].Title)
}

func TestClaimReward_SoldOutRefundsPoints(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)
	require.NoError(t, db.Create(&model.Reward{
		ID: 1, CampaignID: 1, Title: "限量徽章", PointCost: 50, Stock: 1, ClaimedCount: 1,
	}).Error)
	require.NoError(t, db.Create(&model.RewardAccount{UserID: 5, TotalPoints: 120}).Error)

	err := svc.ClaimReward(context.Background(), 1, 5, 1)
	require.ErrorIs(t, err, ErrRewardSoldOut)

	// 扣掉的积分已回退
	status, err := svc.GetRewardStatus(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 120, status.AvailablePoints)
}

func TestClaimReward_WrongCampaign(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)
	require.NoError(t, db.Create(&model.Reward{
		ID: 1, CampaignID: 2, Title: "贴纸", PointCost: 0,
	}).Error)

	err := svc.ClaimReward(context.Background(), 1, 5, 1)
	require.ErrorIs(t, err, ErrRewardNotFound)
}

func TestAddPointsForEvent_AccumulatesAndTiers(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)

	// support 每次 10 分，10 次后达到白银等级阈值
	for i := 0; i < 10; i++ {
		require.NoError(t, svc.AddPointsForEvent(context.Background(), 5, 1, model.EventTypeSupport))
	}

	status, err := svc.GetRewardStatus(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 100, status.TotalPoints)
	require.Equal(t, model.TierSilver, status.CurrentTier)
	require.Equal(t, TierGoldThreshold, status.NextTierPoints)
}

func TestAddPointsForEvent_UnknownTypeIgnored(t *testing.T) {
	svc, _ := newRewardService(t)

	require.NoError(t, svc.AddPointsForEvent(context.Background(), 5, 1, "view"))

	status, err := svc.GetRewardStatus(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 0, status.TotalPoints)
	require.Equal(t, model.TierBronze, status.CurrentTier)
}

func TestGetRewardCatalog_MarksClaimed(t *testing.T) {
	svc, db := newRewardService(t)
	seedRewardCampaign(t, db)
	require.NoError(t, db.Create(&model.Reward{
		ID: 1, CampaignID: 1, Title: "贴纸", PointCost: 0, Stock: 0,
	}).Error)
	require.NoError(t, db.Create(&model.Reward{
		ID: 2, CampaignID: 1, Title: "徽章", PointCost: 20, Stock: 5,
	}).Error)
	require.NoError(t, db.Create(&model.RewardClaim{RewardID: 1, UserID: 5}).Error)

	catalog, err := svc.GetRewardCatalog(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, catalog.Rewards, 2)

	byID := make(map[uint64]*dto.RewardDTO, len(catalog.Rewards))
	for _, r := range catalog.Rewards {
		byID[r.ID] = r
	}
	require.True(t, byID[1].Claimed)
	// 不限量奖励的剩余数量为 -1
	require.Equal(t, -1, byID[1].Remaining)
	require.False(t, byID[2].Claimed)
	require.Equal(t, 5, byID[2].Remaining)
}
