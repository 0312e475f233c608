package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/mongo"
	"ProductLobby/internal/repository"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type RewardService interface {
	// GetRewardCatalog 获取活动奖励目录，附带当前用户的账户状态
	GetRewardCatalog(ctx context.Context, campaignID uint64, userID uint64) (*dto.RewardCatalogDTO, error)
	// CreateReward 活动创建者为活动添加奖励
	CreateReward(ctx context.Context, campaignID uint64, userID uint64, req *dto.RewardCreateDTO) (*dto.RewardDTO, error)
	// ClaimReward 用积分兑换奖励，扣分与扣库存均为原子操作
	ClaimReward(ctx context.Context, campaignID uint64, userID uint64, rewardID uint64) error
	// GetRewardStatus 获取用户的积分账户与等级状态
	GetRewardStatus(ctx context.Context, userID uint64) (*dto.RewardStatusDTO, error)
	// AddPointsForEvent 按事件类型入账积分，晋级时写入通知
	AddPointsForEvent(ctx context.Context, userID uint64, campaignID uint64, eventType string) error
}

type rewardServiceImpl struct {
	rewardRepo       repository.RewardRepo
	campaignRepo     repository.CampaignRepo
	notificationRepo mongo.NotificationRepo
}

func NewRewardService(
	rewardRepo repository.RewardRepo,
	campaignRepo repository.CampaignRepo,
	notificationRepo mongo.NotificationRepo,
) RewardService {
	return &rewardServiceImpl{
		rewardRepo:       rewardRepo,
		campaignRepo:     campaignRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *rewardServiceImpl) GetRewardCatalog(ctx context.Context, campaignID uint64, userID uint64) (*dto.RewardCatalogDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	rewards, err := s.rewardRepo.ListRewardsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	rewardIDs := make([]uint64, 0, len(rewards))
	titleByID := make(map[uint64]string, len(rewards))
	for _, r := range rewards {
		rewardIDs = append(rewardIDs, r.ID)
		titleByID[r.ID] = r.Title
	}

	claimed := make(map[uint64]bool)
	if userID != 0 {
		claims, err := s.rewardRepo.ListClaimsByUser(ctx, userID, rewardIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range claims {
			claimed[c.RewardID] = true
		}
	}

	rewardDTOs := make([]*dto.RewardDTO, 0, len(rewards))
	for _, r := range rewards {
		rewardDTOs = append(rewardDTOs, buildRewardDTO(r, claimed[r.ID]))
	}

	status, err := s.buildRewardStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.RewardCatalogDTO{
		Rewards: rewardDTOs,
		Status:  status,
	}, nil
}

func (s *rewardServiceImpl) CreateReward(ctx context.Context, campaignID uint64, userID uint64, req *dto.RewardCreateDTO) (*dto.RewardDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.CreatorID != userID {
		return nil, ErrNotCampaignCreator
	}

	reward := &model.Reward{
		CampaignID:  campaignID,
		Title:       req.Title,
		Description: req.Description,
		PointCost:   req.PointCost,
		Stock:       req.Stock,
	}
	if err = s.rewardRepo.CreateReward(ctx, reward); err != nil {
		return nil, err
	}
	return buildRewardDTO(reward, false), nil
}

func (s *rewardServiceImpl) ClaimReward(ctx context.Context, campaignID uint64, userID uint64, rewardID uint64) error {
	reward, err := s.rewardRepo.GetReward(ctx, rewardID)
	if err != nil {
		return err
	}
	if reward == nil || reward.CampaignID != campaignID {
		return ErrRewardNotFound
	}

	// 先扣积分再扣库存，库存不足时回退积分
	if reward.PointCost > 0 {
		ok, err := s.rewardRepo.SpendPoints(ctx, userID, reward.PointCost)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPointsInsufficient
		}
	}

	ok, err := s.rewardRepo.IncrementClaimed(ctx, rewardID)
	if err == nil && !ok {
		err = ErrRewardSoldOut
	}
	if err != nil {
		if reward.PointCost > 0 {
			if refundErr := s.rewardRepo.RefundPoints(ctx, userID, reward.PointCost); refundErr != nil {
				slog.ErrorContext(ctx, "refund points failed", "user_id", userID, "points", reward.PointCost, "err", refundErr)
			}
		}
		return err
	}

	if err = s.rewardRepo.CreateClaim(ctx, &model.RewardClaim{
		RewardID:    rewardID,
		UserID:      userID,
		PointsSpent: reward.PointCost,
	}); err != nil {
		return err
	}

	s.sendNotification(ctx, &mongo.NotificationModel{
		ReceiverID: userID,
		Kind:       mongo.NotificationKindRewardClaimed,
		CampaignID: campaignID,
		Title:      "兑换成功",
		Body:       fmt.Sprintf("你已成功兑换奖励「%s」", reward.Title),
		CreatedAt:  time.Now(),
	})
	return nil
}

func (s *rewardServiceImpl) GetRewardStatus(ctx context.Context, userID uint64) (*dto.RewardStatusDTO, error) {
	return s.buildRewardStatus(ctx, userID)
}

func (s *rewardServiceImpl) AddPointsForEvent(ctx context.Context, userID uint64, campaignID uint64, eventType string) error {
	points, ok := consts.EventPoints[eventType]
	if !ok || points <= 0 {
		return nil
	}

	oldTier := model.TierBronze
	if account, err := s.rewardRepo.GetAccount(ctx, userID); err != nil {
		return err
	} else if account != nil {
		oldTier = TierForPoints(account.TotalPoints)
	}

	if err := s.rewardRepo.AddPoints(ctx, userID, points); err != nil {
		return err
	}

	account, err := s.rewardRepo.GetAccount(ctx, userID)
	if err != nil || account == nil {
		return err
	}
	newTier := TierForPoints(account.TotalPoints)
	if newTier != oldTier {
		s.sendNotification(ctx, &mongo.NotificationModel{
			ReceiverID: userID,
			Kind:       mongo.NotificationKindTierUp,
			CampaignID: campaignID,
			Title:      "等级提升",
			Body:       fmt.Sprintf("恭喜晋级 %s 等级", newTier),
			Payload:    map[string]any{"tier": newTier, "total_points": account.TotalPoints},
			CreatedAt:  time.Now(),
		})
	}
	return nil
}

// sendNotification 通知失败只记录日志，不影响主流程
func (s *rewardServiceImpl) sendNotification(ctx context.Context, msg *mongo.NotificationModel) {
	if s.notificationRepo == nil {
		return
	}
	if err := s.notificationRepo.CreateNotification(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "create notification failed", "kind", msg.Kind, "receiver_id", msg.ReceiverID, "err", err)
	}
}

func (s *rewardServiceImpl) buildRewardStatus(ctx context.Context, userID uint64) (*dto.RewardStatusDTO, error) {
	status := &dto.RewardStatusDTO{
		CurrentTier:    model.TierBronze,
		NextTierPoints: TierSilverThreshold,
		ClaimedRewards: make([]*dto.ClaimedRewardDTO, 0),
	}
	if userID == 0 {
		return status, nil
	}

	account, err := s.rewardRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		status.TotalPoints = account.TotalPoints
		status.AvailablePoints = account.TotalPoints - account.SpentPoints
		status.CurrentTier = TierForPoints(account.TotalPoints)
		status.NextTierPoints = NextTierPoints(account.TotalPoints)
	}

	claims, err := s.rewardRepo.ListClaimsByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	for _, c := range claims {
		claimedDTO := &dto.ClaimedRewardDTO{
			RewardID:    c.RewardID,
			PointsSpent: c.PointsSpent,
			ClaimedAt:   c.CreatedAt,
		}
		if reward, err := s.rewardRepo.GetReward(ctx, c.RewardID); err == nil && reward != nil {
			claimedDTO.Title = reward.Title
		}
		status.ClaimedRewards = append(status.ClaimedRewards, claimedDTO)
	}
	return status, nil
}

func buildRewardDTO(reward *model.Reward, claimed bool) *dto.RewardDTO {
	remaining := -1
	if reward.Stock > 0 {
		remaining = reward.Stock - reward.ClaimedCount
		if remaining < 0 {
			remaining = 0
		}
	}
	return &dto.RewardDTO{
		ID:          reward.ID,
		CampaignID:  reward.CampaignID,
		Title:       reward.Title,
		Description: reward.Description,
		PointCost:   reward.PointCost,
		Stock:       reward.Stock,
		Remaining:   remaining,
		Claimed:     claimed,
	}
}
