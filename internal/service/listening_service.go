package service

import (
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/repository"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type ListeningService interface {
	// PollAllBrands 轮询所有配置了聆听地址的品牌
	PollAllBrands(ctx context.Context) error
	// PollBrand 抓取品牌的公开页面，把新增的活动提及记为 social_share 事件
	PollBrand(ctx context.Context, brand *model.Brand) error
}

type listeningServiceImpl struct {
	brandRepo        repository.BrandRepo
	campaignRepo     repository.CampaignRepo
	contributionRepo repository.ContributionRepo
	client           *resty.Client
}

func NewListeningService(
	brandRepo repository.BrandRepo,
	campaignRepo repository.CampaignRepo,
	contributionRepo repository.ContributionRepo,
	client *resty.Client,
) ListeningService {
	return &listeningServiceImpl{
		brandRepo:        brandRepo,
		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		client:           client,
	}
}

func (s *listeningServiceImpl) PollAllBrands(ctx context.Context) error {
	brands, err := s.brandRepo.ListBrandsWithListening(ctx)
	if err != nil {
		return err
	}

	for _, brand := range brands {
		if err = s.PollBrand(ctx, brand); err != nil {
			slog.ErrorContext(ctx, "poll brand failed", "brand_id", brand.ID, "err", err)
		}
	}
	return nil
}

func (s *listeningServiceImpl) PollBrand(ctx context.Context, brand *model.Brand) error {
	if brand.ListeningURLs == nil {
		return nil
	}
	urls := util.SplitListeningURLs(*brand.ListeningURLs)
	if len(urls) == 0 {
		return nil
	}

	campaigns, err := s.liveCampaignsForBrand(ctx, brand.ID)
	if err != nil {
		return err
	}
	if len(campaigns) == 0 {
		return nil
	}

	// 汇总所有页面的可见文本，统一做提及计数
	var pageText strings.Builder
	for _, url := range urls {
		text, err := s.fetchPageText(ctx, url)
		if err != nil {
			slog.WarnContext(ctx, "fetch listening page failed", "brand_id", brand.ID, "url", url, "err", err)
			continue
		}
		pageText.WriteString(strings.ToLower(text))
		pageText.WriteString(" ")
	}
	content := pageText.String()
	if content == "" {
		return nil
	}

	for _, campaign := range campaigns {
		mentions := strings.Count(content, strings.ToLower(campaign.Title)) +
			strings.Count(content, strings.ToLower(campaign.Slug))
		if mentions == 0 {
			continue
		}
		if err = s.recordNewMentions(ctx, brand.ID, campaign, mentions); err != nil {
			slog.ErrorContext(ctx, "record mentions failed", "campaign_id", campaign.ID, "err", err)
		}
	}
	return nil
}

// recordNewMentions 只记录超出上次轮询的增量，避免重复计数
func (s *listeningServiceImpl) recordNewMentions(ctx context.Context, brandID uint64, campaign *model.Campaign, mentions int) error {
	key := fmt.Sprintf("%s%d:%d", consts.ListeningLastPollKey, brandID, campaign.ID)

	last := 0
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		last, _ = strconv.Atoi(val)
	}
	if mentions <= last {
		return nil
	}

	for i := 0; i < mentions-last; i++ {
		if err := s.contributionRepo.CreateEvent(ctx, &model.ContributionEvent{
			UserID:     consts.ListeningUserID,
			CampaignID: campaign.ID,
			EventType:  model.EventTypeSocialShare,
		}); err != nil {
			return err
		}
	}
	return redis.SetValue(ctx, key, strconv.Itoa(mentions))
}

func (s *listeningServiceImpl) fetchPageText(ctx context.Context, url string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

func (s *listeningServiceImpl) liveCampaignsForBrand(ctx context.Context, brandID uint64) ([]*model.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx, model.CampaignStatusLive, 1, 200)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Campaign, 0)
	for _, c := range campaigns {
		if c.BrandID != nil && *c.BrandID == brandID {
			result = append(result, c)
		}
	}
	return result, nil
}
