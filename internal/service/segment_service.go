package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/segment"
	"ProductLobby/internal/repository"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// 预定义分群的判定阈值
const (
	PowerUserEventsIn7Days = 5
	NewSupporterWindowDays = 7
	DormantThresholdDays   = 60
	TopVoterPreferences    = 10
)

type SegmentService interface {
	// GetSegments 返回活动的全部受众分群（预定义 + 自定义），成员数为实时计算
	GetSegments(ctx context.Context, campaignID uint64, userID uint64) ([]*dto.AudienceSegmentDTO, error)
	// CreateSegment 创建自定义分群，规则先编译校验再入库
	CreateSegment(ctx context.Context, campaignID uint64, userID uint64, req *dto.SegmentCreateDTO) (*dto.AudienceSegmentDTO, error)
	DeleteSegment(ctx context.Context, campaignID uint64, segmentID uint64, userID uint64) error
}

type segmentServiceImpl struct {
	campaignRepo     repository.CampaignRepo
	contributionRepo repository.ContributionRepo
	segmentRepo      repository.SegmentRepo
}

func NewSegmentService(
	campaignRepo repository.CampaignRepo,
	contributionRepo repository.ContributionRepo,
	segmentRepo repository.SegmentRepo,
) SegmentService {
	return &segmentServiceImpl{
		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		segmentRepo:      segmentRepo,
	}
}

// predefinedSegment 预定义分群：名称 + 判定谓词 + 文案描述
type predefinedSegment struct {
	id       string
	name     string
	criteria []string
	match    func(e *repository.UserEngagement, now time.Time) bool
}

var predefinedSegments = []predefinedSegment{
	{
		id:       "power-users",
		name:     "核心用户",
		criteria: []string{"最近 7 天内产生 5 次以上行为"},
		match: func(e *repository.UserEngagement, now time.Time) bool {
			return e.EventsLast7Days >= PowerUserEventsIn7Days
		},
	},
	{
		id:       "new-supporters",
		name:     "新支持者",
		criteria: []string{"首次行为发生在最近 7 天内"},
		match: func(e *repository.UserEngagement, now time.Time) bool {
			return now.Sub(e.FirstEventAt) <= NewSupporterWindowDays*24*time.Hour
		},
	},
	{
		id:       "dormant",
		name:     "沉睡用户",
		criteria: []string{"超过 60 天没有任何行为"},
		match: func(e *repository.UserEngagement, now time.Time) bool {
			return now.Sub(e.LastEventAt) > DormantThresholdDays*24*time.Hour
		},
	},
	{
		id:       "top-voters",
		name:     "投票达人",
		criteria: []string{"累计提交 10 次以上偏好投票"},
		match: func(e *repository.UserEngagement, now time.Time) bool {
			return e.PreferenceCount >= TopVoterPreferences
		},
	},
	{
		id:       "social-sharers",
		name:     "社交传播者",
		criteria: []string{"至少分享过一次活动"},
		match: func(e *repository.UserEngagement, now time.Time) bool {
			return e.ShareCount > 0
		},
	},
}

func (s *segmentServiceImpl) GetSegments(ctx context.Context, campaignID uint64, userID uint64) ([]*dto.AudienceSegmentDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	// 分群数据只对活动创建者可见
	if campaign.CreatorID != userID {
		return nil, ErrNotCampaignCreator
	}

	now := time.Now()
	engagements, err := s.contributionRepo.GetUserEngagements(ctx, campaignID, now)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AudienceSegmentDTO, 0, len(predefinedSegments))
	for _, p := range predefinedSegments {
		members := make([]*repository.UserEngagement, 0)
		for _, e := range engagements {
			if p.match(e, now) {
				members = append(members, e)
			}
		}
		result = append(result, s.buildSegmentDTO(p.id, p.name, "", p.criteria, members, false, nil))
	}

	customSegments, err := s.segmentRepo.ListCustomSegmentsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	for _, cs := range customSegments {
		segDTO, err := s.evaluateCustomSegment(cs, engagements, now)
		if err != nil {
			// 历史规则编译失败不应拖垮整个接口，记录后跳过
			slog.ErrorContext(ctx, "custom segment evaluation failed", "segment_id", cs.ID, "err", err)
			continue
		}
		result = append(result, segDTO)
	}

	return result, nil
}

func (s *segmentServiceImpl) CreateSegment(ctx context.Context, campaignID uint64, userID uint64, req *dto.SegmentCreateDTO) (*dto.AudienceSegmentDTO, error) {
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

	if _, err = segment.Compile(req.Rules); err != nil {
		return nil, ErrSegmentRulesInvalid
	}

	rulesJSON, err := json.Marshal(req.Rules)
	if err != nil {
		return nil, err
	}

	customSegment := &model.CustomSegment{
		CampaignID:  campaignID,
		Name:        req.Name,
		Description: req.Description,
		Rules:       string(rulesJSON),
	}
	if err = s.segmentRepo.CreateCustomSegment(ctx, customSegment); err != nil {
		return nil, err
	}

	now := time.Now()
	engagements, err := s.contributionRepo.GetUserEngagements(ctx, campaignID, now)
	if err != nil {
		return nil, err
	}
	return s.evaluateCustomSegment(customSegment, engagements, now)
}

func (s *segmentServiceImpl) DeleteSegment(ctx context.Context, campaignID uint64, segmentID uint64, userID uint64) error {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.CreatorID != userID {
		return ErrNotCampaignCreator
	}

	affected, err := s.segmentRepo.DeleteCustomSegment(ctx, segmentID, campaignID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSegmentNotFound
	}
	return nil
}

// evaluateCustomSegment 将存储的规则编译为 CEL 程序并对全量用户求值
func (s *segmentServiceImpl) evaluateCustomSegment(cs *model.CustomSegment, engagements []*repository.UserEngagement, now time.Time) (*dto.AudienceSegmentDTO, error) {
	var rules []segment.Rule
	if err := json.Unmarshal([]byte(cs.Rules), &rules); err != nil {
		return nil, err
	}
	program, err := segment.Compile(rules)
	if err != nil {
		return nil, err
	}

	members := make([]*repository.UserEngagement, 0)
	for _, e := range engagements {
		matched, err := program.Match(engagementStats(e, now))
		if err != nil {
			return nil, err
		}
		if matched {
			members = append(members, e)
		}
	}

	criteria := make([]string, 0, len(rules))
	for _, r := range rules {
		criteria = append(criteria, fmt.Sprintf("%s %s %d", r.Field, r.Operator, r.Value))
	}
	return s.buildSegmentDTO(strconv.FormatUint(cs.ID, 10), cs.Name, cs.Description, criteria, members, true, rules), nil
}

func (s *segmentServiceImpl) buildSegmentDTO(
	id, name, description string,
	criteria []string,
	members []*repository.UserEngagement,
	custom bool,
	rules []segment.Rule,
) *dto.AudienceSegmentDTO {
	totalEvents := 0
	for _, m := range members {
		totalEvents += m.TotalEvents
	}

	avg := 0.0
	activityScore := 0
	if len(members) > 0 {
		avg = float64(totalEvents) / float64(len(members))
		activityScore = Clamp100(avg / float64(ActivityScoreTarget) * 100)
	}

	return &dto.AudienceSegmentDTO{
		ID:            id,
		Name:          name,
		Description:   description,
		MemberCount:   len(members),
		ActivityScore: activityScore,
		Criteria:      criteria,
		Stats: &dto.SegmentStatsDTO{
			AvgEventsPerMember: avg,
			TotalEvents:        totalEvents,
		},
		Custom: custom,
		Rules:  rules,
	}
}

// engagementStats 将行为聚合转换为规则引擎的输入快照
func engagementStats(e *repository.UserEngagement, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"total_events":           int64(e.TotalEvents),
		"events_last_7_days":     int64(e.EventsLast7Days),
		"preference_count":       int64(e.PreferenceCount),
		"share_count":            int64(e.ShareCount),
		"days_since_first_event": int64(now.Sub(e.FirstEventAt).Hours() / 24),
		"days_since_last_event":  int64(now.Sub(e.LastEventAt).Hours() / 24),
	}
}
