package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/es"
	"ProductLobby/internal/pkg/minio"
	"ProductLobby/internal/pkg/mongo"
	"ProductLobby/internal/repository"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

// 活动状态机：draft 只能上线，live 可暂停或关闭，paused 可恢复或关闭，closed 为终态
var campaignTransitions = map[string][]string{
	model.CampaignStatusDraft:  {model.CampaignStatusLive},
	model.CampaignStatusLive:   {model.CampaignStatusPaused, model.CampaignStatusClosed},
	model.CampaignStatusPaused: {model.CampaignStatusLive, model.CampaignStatusClosed},
	model.CampaignStatusClosed: {},
}

type CampaignService interface {
	CreateCampaign(ctx context.Context, userID uint64, req *dto.CampaignCreateDTO) (*dto.CampaignDTO, error)
	GetCampaign(ctx context.Context, id uint64) (*dto.CampaignDTO, error)
	GetCampaignBySlug(ctx context.Context, slugStr string) (*dto.CampaignDTO, error)
	ListCampaigns(ctx context.Context, req *dto.CampaignListDTO) ([]*dto.CampaignDTO, error)
	ListMyCampaigns(ctx context.Context, userID uint64) ([]*dto.CampaignDTO, error)
	UpdateCampaign(ctx context.Context, id uint64, userID uint64, req *dto.CampaignUpdateDTO) error
	// ChangeStatus 按状态机流转活动状态，目标品牌上线时收到通知
	ChangeStatus(ctx context.Context, id uint64, userID uint64, status string) error
	// UploadCover 上传活动封面到对象存储
	UploadCover(ctx context.Context, id uint64, userID uint64, reader io.Reader, size int64, contentType string) (string, error)
	// SearchCampaigns 全文检索上线中的活动
	SearchCampaigns(ctx context.Context, req *dto.CampaignSearchDTO) ([]*dto.CampaignDTO, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
}

type campaignServiceImpl struct {
	campaignRepo     repository.CampaignRepo
	contributionRepo repository.ContributionRepo
	brandRepo        repository.BrandRepo
	campaignES       es.CampaignRepo
	notificationRepo mongo.NotificationRepo
}

func NewCampaignService(
	campaignRepo repository.CampaignRepo,
	contributionRepo repository.ContributionRepo,
	brandRepo repository.BrandRepo,
	campaignES es.CampaignRepo,
	notificationRepo mongo.NotificationRepo,
) CampaignService {
	return &campaignServiceImpl{
		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		brandRepo:        brandRepo,
		campaignES:       campaignES,
		notificationRepo: notificationRepo,
	}
}

func (s *campaignServiceImpl) CreateCampaign(ctx context.Context, userID uint64, req *dto.CampaignCreateDTO) (*dto.CampaignDTO, error) {
	if req.BrandID != nil {
		brand, err := s.brandRepo.GetBrand(ctx, *req.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, ErrBrandNotFound
		}
	}

	slugStr, err := s.generateSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	campaign := &model.Campaign{
		Slug:        slugStr,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.CampaignStatusDraft,
		CreatorID:   userID,
		BrandID:     req.BrandID,
	}
	if err = s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	s.indexCampaign(ctx, campaign)
	return buildCampaignDTO(campaign), nil
}

func (s *campaignServiceImpl) GetCampaign(ctx context.Context, id uint64) (*dto.CampaignDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return buildCampaignDTO(campaign), nil
}

func (s *campaignServiceImpl) GetCampaignBySlug(ctx context.Context, slugStr string) (*dto.CampaignDTO, error) {
	campaign, err := s.campaignRepo.GetCampaignBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return buildCampaignDTO(campaign), nil
}

func (s *campaignServiceImpl) ListCampaigns(ctx context.Context, req *dto.CampaignListDTO) ([]*dto.CampaignDTO, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx, req.Status, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	return buildCampaignDTOs(campaigns), nil
}

func (s *campaignServiceImpl) ListMyCampaigns(ctx context.Context, userID uint64) ([]*dto.CampaignDTO, error) {
	campaigns, err := s.campaignRepo.ListCampaignsByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCampaignDTOs(campaigns), nil
}

func (s *campaignServiceImpl) UpdateCampaign(ctx context.Context, id uint64, userID uint64, req *dto.CampaignUpdateDTO) error {
	campaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.CreatorID != userID {
		return ErrNotCampaignCreator
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if err = s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return err
	}

	s.indexCampaign(ctx, campaign)
	return nil
}

func (s *campaignServiceImpl) ChangeStatus(ctx context.Context, id uint64, userID uint64, status string) error {
	campaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.CreatorID != userID {
		return ErrNotCampaignCreator
	}

	allowed := false
	for _, next := range campaignTransitions[campaign.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrCampaignStatusInvalid
	}

	if err = s.campaignRepo.UpdateCampaignStatus(ctx, id, status); err != nil {
		return err
	}
	campaign.Status = status
	s.indexCampaign(ctx, campaign)

	// 活动上线时通知目标品牌所有者
	if status == model.CampaignStatusLive && campaign.BrandID != nil {
		brand, err := s.brandRepo.GetBrand(ctx, *campaign.BrandID)
		if err == nil && brand != nil {
			msg := &mongo.NotificationModel{
				ReceiverID: brand.OwnerID,
				Kind:       mongo.NotificationKindCampaignState,
				CampaignID: campaign.ID,
				Title:      "新活动上线",
				Body:       fmt.Sprintf("面向你品牌的活动「%s」已上线", campaign.Title),
				CreatedAt:  time.Now(),
			}
			if err = s.notificationRepo.CreateNotification(ctx, msg); err != nil {
				slog.ErrorContext(ctx, "create notification failed", "campaign_id", campaign.ID, "err", err)
			}
		}
	}
	return nil
}

func (s *campaignServiceImpl) UploadCover(ctx context.Context, id uint64, userID uint64, reader io.Reader, size int64, contentType string) (string, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", ErrCampaignNotFound
	}
	if campaign.CreatorID != userID {
		return "", ErrNotCampaignCreator
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	objectName := fmt.Sprintf("covers/%d/%s", id, uuid.NewString())
	if _, err = minio.UploadFile(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}

	coverURL := minio.GetPublicURL(objectName)
	if err = s.campaignRepo.UpdateCoverURL(ctx, id, coverURL); err != nil {
		return "", err
	}

	campaign.CoverURL = &coverURL
	s.indexCampaign(ctx, campaign)
	return coverURL, nil
}

func (s *campaignServiceImpl) SearchCampaigns(ctx context.Context, req *dto.CampaignSearchDTO) ([]*dto.CampaignDTO, error) {
	from := (req.Page - 1) * req.PageSize
	docs, err := s.campaignES.SearchCampaigns(ctx, req.Keyword, from, req.PageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignDTO, 0, len(docs))
	for _, doc := range docs {
		campaignDTO := &dto.CampaignDTO{}
		_ = copier.Copy(campaignDTO, doc)
		if doc.BrandID != 0 {
			brandID := doc.BrandID
			campaignDTO.BrandID = &brandID
		}
		if doc.CoverURL != "" {
			coverURL := doc.CoverURL
			campaignDTO.CoverURL = &coverURL
		}
		result = append(result, campaignDTO)
	}
	return result, nil
}

func (s *campaignServiceImpl) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	return s.campaignES.GetSuggestions(ctx, keyword)
}

// generateSlug 标题转 slug，冲突时追加短随机后缀
func (s *campaignServiceImpl) generateSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", ErrParamInvalid
	}

	exists, err := s.campaignRepo.ExistsSlug(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	for i := 0; i < 3; i++ {
		candidate := fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
		exists, err = s.campaignRepo.ExistsSlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrCampaignSlugExist
}

// indexCampaign 同步活动文档到 ES，失败只记录日志
func (s *campaignServiceImpl) indexCampaign(ctx context.Context, campaign *model.Campaign) {
	if s.campaignES == nil {
		return
	}

	doc := &es.CampaignES{
		ID:          campaign.ID,
		Slug:        campaign.Slug,
		Title:       campaign.Title,
		Description: campaign.Description,
		Status:      campaign.Status,
		CreatorID:   campaign.CreatorID,
		CreatedAt:   campaign.CreatedAt,
		UpdatedAt:   campaign.UpdatedAt,
	}
	if campaign.BrandID != nil {
		doc.BrandID = *campaign.BrandID
	}
	if campaign.CoverURL != nil {
		doc.CoverURL = *campaign.CoverURL
	}
	if count, err := s.contributionRepo.CountEvents(ctx, campaign.ID, model.EventTypeSupport); err == nil {
		doc.LobbiesCount = int(count)
	}

	if err := s.campaignES.IndexCampaign(ctx, doc, time.Now().UnixMilli()); err != nil {
		slog.ErrorContext(ctx, "index campaign failed", "campaign_id", campaign.ID, "err", err)
	}
}

func buildCampaignDTO(campaign *model.Campaign) *dto.CampaignDTO {
	createdAt := campaign.CreatedAt
	return &dto.CampaignDTO{
		ID:          campaign.ID,
		Slug:        campaign.Slug,
		Title:       campaign.Title,
		Description: campaign.Description,
		Status:      campaign.Status,
		CreatorID:   campaign.CreatorID,
		BrandID:     campaign.BrandID,
		CoverURL:    campaign.CoverURL,
		CreatedAt:   &createdAt,
	}
}

func buildCampaignDTOs(campaigns []*model.Campaign) []*dto.CampaignDTO {
	result := make([]*dto.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, buildCampaignDTO(c))
	}
	return result
}
