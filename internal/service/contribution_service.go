package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/repository"
	"context"
	"log/slog"
	"strconv"
)

const LeaderboardSize = 10

type ContributionService interface {
	// RecordContribution 记录一次用户行为事件，活动必须处于 live 状态
	RecordContribution(ctx context.Context, campaignID uint64, userID uint64, eventType string) error
	// GetLeaderboard 获取活动贡献排行榜
	GetLeaderboard(ctx context.Context, campaignID uint64) ([]*dto.LeaderboardEntryDTO, error)
}

type contributionServiceImpl struct {
	contributionRepo repository.ContributionRepo
	campaignRepo     repository.CampaignRepo
	userRepo         repository.UserRepo
	rewardService    RewardService
}

func NewContributionService(
	contributionRepo repository.ContributionRepo,
	campaignRepo repository.CampaignRepo,
	userRepo repository.UserRepo,
	rewardService RewardService,
) ContributionService {
	return &contributionServiceImpl{
		contributionRepo: contributionRepo,
		campaignRepo:     campaignRepo,
		userRepo:         userRepo,
		rewardService:    rewardService,
	}
}

func (s *contributionServiceImpl) RecordContribution(ctx context.Context, campaignID uint64, userID uint64, eventType string) error {
	if _, ok := consts.EventPoints[eventType]; !ok {
		return ErrEventTypeInvalid
	}

	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.Status != model.CampaignStatusLive {
		return ErrCampaignNotLive
	}

	// support 事件每人每活动只记一次
	if eventType == model.EventTypeSupport {
		exists, err := s.contributionRepo.ExistsEvent(ctx, userID, campaignID, model.EventTypeSupport)
		if err != nil {
			return err
		}
		if exists {
			return ErrSupportDuplicate
		}
	}

	if err = s.contributionRepo.CreateEvent(ctx, &model.ContributionEvent{
		UserID:     userID,
		CampaignID: campaignID,
		EventType:  eventType,
	}); err != nil {
		return err
	}

	if err = s.rewardService.AddPointsForEvent(ctx, userID, campaignID, eventType); err != nil {
		slog.ErrorContext(ctx, "add points failed", "user_id", userID, "event_type", eventType, "err", err)
	}

	// 排行榜与脏活动集合均为尽力而为，失败不影响事件落库
	campaignKey := strconv.FormatUint(campaignID, 10)
	if err = redis.ZIncrBy(ctx, consts.CampaignLeaderboardKey+campaignKey, 1, strconv.FormatUint(userID, 10)); err != nil {
		slog.ErrorContext(ctx, "leaderboard incr failed", "campaign_id", campaignID, "err", err)
	}
	if err = redis.SAdd(ctx, consts.CampaignDirtyKey, campaignKey); err != nil {
		slog.ErrorContext(ctx, "mark dirty campaign failed", "campaign_id", campaignID, "err", err)
	}
	return nil
}

func (s *contributionServiceImpl) GetLeaderboard(ctx context.Context, campaignID uint64) ([]*dto.LeaderboardEntryDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	key := consts.CampaignLeaderboardKey + strconv.FormatUint(campaignID, 10)
	members, err := redis.ZRevRangeWithScores(ctx, key, 0, LeaderboardSize-1)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		userIDs = append(userIDs, id)
	}

	nameByID := make(map[uint64]string, len(userIDs))
	if len(userIDs) > 0 {
		users, err := s.userRepo.GetUserByIds(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			nameByID[u.ID] = u.DisplayName
		}
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(members))
	for i, m := range members {
		id, err := strconv.ParseUint(m.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, &dto.LeaderboardEntryDTO{
			UserID:      id,
			DisplayName: nameByID[id],
			Rank:        i + 1,
			EventCount:  int64(m.Score),
		})
	}
	return entries, nil
}
