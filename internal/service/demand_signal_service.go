package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/repository"
	"context"
	"time"
)

type DemandSignalService interface {
	// GetDemandSignal 聚合活动的全量需求信号，仅活动创建者与目标品牌所有者可见
	GetDemandSignal(ctx context.Context, campaignID uint64, userID uint64) (*dto.DemandSignalDTO, error)
}

type demandSignalServiceImpl struct {
	campaignRepo     repository.CampaignRepo
	contributionRepo repository.ContributionRepo
	brandRepo        repository.BrandRepo
}

func NewDemandSignalService(
	campaignRepo repository.CampaignRepo,
	contributionRepo repository.ContributionRepo,
	brandRepo repository.BrandRepo,
) DemandSignalService {
	return &demandSignalServiceImpl{
		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		brandRepo:        brandRepo,
	}
}

func (s *demandSignalServiceImpl) GetDemandSignal(ctx context.Context, campaignID uint64, userID uint64) (*dto.DemandSignalDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if err = s.checkViewPermission(ctx, campaign, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	totalLobbies, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeSupport)
	if err != nil {
		return nil, err
	}
	last7, err := s.contributionRepo.CountEventsInWindow(ctx, campaignID, model.EventTypeSupport, sevenDaysAgo, now)
	if err != nil {
		return nil, err
	}
	prev7, err := s.contributionRepo.CountEventsInWindow(ctx, campaignID, model.EventTypeSupport, fourteenDaysAgo, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.contributionRepo.CountEvents(ctx, campaignID, model.EventTypeComment)
	if err != nil {
		return nil, err
	}
	contributorCount, err := s.contributionRepo.CountUniqueContributors(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	rate, isNew := GrowthRate(last7, prev7)
	scores := ComputeComponentScores(totalLobbies, last7, prev7, commentCount, contributorCount)

	responseStatus := model.BrandResponseNone
	if response, err := s.brandRepo.GetResponseByCampaign(ctx, campaignID); err != nil {
		return nil, err
	} else if response != nil {
		responseStatus = response.Status
	}

	return &dto.DemandSignalDTO{
		CampaignID:               campaignID,
		CampaignTitle:            campaign.Title,
		TotalLobbies:             totalLobbies,
		LobbiesLastSevenDays:     last7,
		LobbiesPreviousSevenDays: prev7,
		GrowthRate:               rate,
		IsNew:                    isNew,
		CommentCount:             commentCount,
		UniqueContributorCount:   contributorCount,
		BrandResponseStatus:      responseStatus,
		DemandScore:              ComposeDemandScore(scores),
		ComponentScores:          scores,
		Breakdown: []*dto.ScoreBreakdownDTO{
			{Component: "lobbies", RawValue: totalLobbies, Score: scores.Lobbies, Weight: 0.25},
			{Component: "growth", RawValue: last7, Score: scores.Growth, Weight: 0.25},
			{Component: "comments", RawValue: commentCount, Score: scores.Comments, Weight: 0.25},
			{Component: "contributors", RawValue: contributorCount, Score: scores.Contributors, Weight: 0.25},
		},
	}, nil
}

// checkViewPermission 需求信号只对活动创建者和目标品牌的所有者开放
func (s *demandSignalServiceImpl) checkViewPermission(ctx context.Context, campaign *model.Campaign, userID uint64) error {
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
