package kafka

import (
	"ProductLobby/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ContributionMessage 外部渠道（合作方集成、埋点上报）推送的行为事件
type ContributionMessage struct {
	UserID     uint64 `json:"user_id"`
	CampaignID uint64 `json:"campaign_id"`
	EventType  string `json:"event_type"`
}

type ContributionHandler struct {
	contributionService service.ContributionService
}

func NewContributionHandler(contributionService service.ContributionService) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

func (s *ContributionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("contribution consumer setup")
	return nil
}

func (s *ContributionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("contribution consumer cleanup")
	return nil
}

func (s *ContributionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-contribution consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-contribution process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ContributionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ContributionMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal contribution message error", "err", err)
		return nil
	}
	if event.UserID == 0 || event.CampaignID == 0 {
		return nil
	}

	err := s.contributionService.RecordContribution(ctx, event.CampaignID, event.UserID, event.EventType)
	if err != nil {
		// 业务校验失败（重复支持、活动未上线等）直接丢弃，重试解决不了
		if service.ErrorMap[err] != 0 && !errors.Is(err, service.UnExpectedError) {
			log.Warn("drop contribution message", "campaign_id", event.CampaignID, "user_id", event.UserID, "reason", err)
			return nil
		}
		return err
	}
	return nil
}
