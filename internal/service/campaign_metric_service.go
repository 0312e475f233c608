package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type CampaignMetricService interface {
	// SyncCampaignMetric 将事件表的实时聚合刷入每日指标快照
	SyncCampaignMetric(ctx context.Context, campaignID uint64) error
	// GetCampaignMetricsBy7Days 获取最近7天全维度趋势数据
	GetCampaignMetricsBy7Days(ctx context.Context, campaignID uint64, userID uint64) (*dto.CampaignTrendDTO, error)
	// GetCampaignMetricsBy30Days 获取最近30天全维度趋势数据
	GetCampaignMetricsBy30Days(ctx context.Context, campaignID uint64, userID uint64) (*dto.CampaignTrendDTO, error)
}

type campaignMetricServiceImpl struct {
	campaignMetricRepo repository.CampaignMetricRepo
	campaignRepo       repository.CampaignRepo
	contributionRepo   repository.ContributionRepo
	brandRepo          repository.BrandRepo
}

func NewCampaignMetricService(
	campaignMetricRepo repository.CampaignMetricRepo,
	campaignRepo repository.CampaignRepo,
	contributionRepo repository.ContributionRepo,
	brandRepo repository.BrandRepo,
) CampaignMetricService {
	return &campaignMetricServiceImpl{
		campaignMetricRepo: campaignMetricRepo,
		campaignRepo:       campaignRepo,
		contributionRepo:   contributionRepo,
		brandRepo:          brandRepo,
	}
}

// SyncCampaignMetric 实现：事件表实时计数刷入每日指标表
func (s *campaignMetricServiceImpl) SyncCampaignMetric(ctx context.Context, campaignID uint64) error {
	lobbies, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeSupport)
	if err != nil {
		return err
	}
	comments, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeComment)
	if err != nil {
		return err
	}
	shares, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeShare)
	if err != nil {
		return err
	}
	socialShares, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeSocialShare)
	if err != nil {
		return err
	}
	contributors, err := s.contributionRepo.CountUniqueContributors(ctx, campaignID)
	if err != nil {
		return err
	}

	today := util.GetMidnight(time.Now())
	metric := &model.CampaignMetric{
		CampaignID:        campaignID,
		MetricDate:        today,
		TotalLobbies:      int(lobbies),
		TotalComments:     int(comments),
		TotalShares:       int(shares + socialShares),
		TotalContributors: int(contributors),
	}

	err = s.campaignMetricRepo.SaveOrUpdateMetric(ctx, metric)
	if err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.CampaignMetrics7DaysKey+strconv.FormatUint(campaignID, 10))
	_ = redis.DeleteKey(ctx, consts.CampaignMetrics30DaysKey+strconv.FormatUint(campaignID, 10))

	return nil
}

func (s *campaignMetricServiceImpl) GetCampaignMetricsBy7Days(ctx context.Context, campaignID uint64, userID uint64) (*dto.CampaignTrendDTO, error) {
	key := consts.CampaignMetrics7DaysKey + strconv.FormatUint(campaignID, 10)
	return s.getCampaignMetrics(ctx, campaignID, userID, key, 7, func() ([]*model.CampaignMetric, error) {
		return s.campaignMetricRepo.GetCampaignMetricsBy7Days(ctx, campaignID)
	})
}

func (s *campaignMetricServiceImpl) GetCampaignMetricsBy30Days(ctx context.Context, campaignID uint64, userID uint64) (*dto.CampaignTrendDTO, error) {
	key := consts.CampaignMetrics30DaysKey + strconv.FormatUint(campaignID, 10)
	return s.getCampaignMetrics(ctx, campaignID, userID, key, 30, func() ([]*model.CampaignMetric, error) {
		return s.campaignMetricRepo.GetCampaignMetricsBy30Days(ctx, campaignID)
	})
}

// getCampaignMetrics 聚合查询与数据平滑逻辑：缺失日期用前值补齐
func (s *campaignMetricServiceImpl) getCampaignMetrics(
	ctx context.Context,
	campaignID uint64,
	userID uint64,
	key string,
	days int,
	fetchDB func() ([]*model.CampaignMetric, error),
) (*dto.CampaignTrendDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if err = s.checkTrendPermission(ctx, campaign, userID); err != nil {
		return nil, err
	}

	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.CampaignTrendDTO
		_ = json.Unmarshal([]byte(val), &res)
		return &res, nil
	}

	rawData, err := fetchDB()
	if err != nil {
		return nil, err
	}

	startTime := util.GetMidnight(time.Now()).AddDate(0, 0, -days)
	var baseline *model.CampaignMetric
	if len(rawData) == 0 || !rawData[0].MetricDate.Equal(startTime) {
		baseline, _ = s.campaignMetricRepo.GetLatestMetricBefore(ctx, campaignID, startTime)
	} else {
		baseline = rawData[0]
	}

	dataMap := make(map[string]*model.CampaignMetric)
	for _, m := range rawData {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.CampaignTrendDTO{
		CampaignID:   campaignID,
		Days:         days,
		Lobbies:      make([]*dto.CampaignMetricDTO, 0, days),
		Comments:     make([]*dto.CampaignMetricDTO, 0, days),
		Shares:       make([]*dto.CampaignMetricDTO, 0, days),
		Contributors: make([]*dto.CampaignMetricDTO, 0, days),
	}

	var lastValid = baseline
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		currentDate := util.GetMidnight(now.AddDate(0, 0, -i))
		dateStr := currentDate.Format(time.DateOnly)

		l, c, sh, ct := 0, 0, 0, 0
		if val, ok := dataMap[dateStr]; ok {
			l, c, sh, ct = val.TotalLobbies, val.TotalComments, val.TotalShares, val.TotalContributors
			lastValid = val
		} else if lastValid != nil {
			l, c, sh, ct = lastValid.TotalLobbies, lastValid.TotalComments, lastValid.TotalShares, lastValid.TotalContributors
		}

		res.Lobbies = append(res.Lobbies, &dto.CampaignMetricDTO{Date: dateStr, Value: l})
		res.Comments = append(res.Comments, &dto.CampaignMetricDTO{Date: dateStr, Value: c})
		res.Shares = append(res.Shares, &dto.CampaignMetricDTO{Date: dateStr, Value: sh})
		res.Contributors = append(res.Contributors, &dto.CampaignMetricDTO{Date: dateStr, Value: ct})
	}

	_ = redis.SetWithMidnightExpiration(ctx, key, res)

	return res, nil
}

// checkTrendPermission 趋势数据对活动创建者与目标品牌所有者开放
func (s *campaignMetricServiceImpl) checkTrendPermission(ctx context.Context, campaign *model.Campaign, userID uint64) error {
	if campaign.CreatorID == userID {
		return nil
	}
	if campaign.BrandID != nil {
		brand, err := s.brandRepo.GetBrand(ctx, *campaign.BrandID)
		if err != nil {
			return err
		}
		if brand != nil && brand.OwnerID == userID {
			return nil
		}
	}
	return UnauthorizedError
}
