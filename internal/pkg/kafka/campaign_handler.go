package kafka

import (
	"ProductLobby/internal/pkg/es"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

// CampaignHandler 消费 campaigns 表的 Canal CDC 消息，保持 ES 索引与库内一致
type CampaignHandler struct {
	campaignESRepo es.CampaignRepo
}

func NewCampaignHandler(campaignESRepo es.CampaignRepo) *CampaignHandler {
	return &CampaignHandler{
		campaignESRepo: campaignESRepo,
	}
}

func (s *CampaignHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("campaign consumer setup")
	return nil
}

func (s *CampaignHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("campaign consumer cleanup")
	return nil
}

func (s *CampaignHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-campaign consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-campaign process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CampaignHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "campaigns")
	if err != nil {
		return nil
	}

	switch canalMsg.Type {
	case INSERT, UPDATE:
		for _, row := range canalMsg.Data {
			doc := rowToCampaignES(row)
			if doc == nil {
				continue
			}
			if err = s.campaignESRepo.IndexCampaign(ctx, doc, canalMsg.ES); err != nil {
				return err
			}
		}
	case DELETE:
		for _, row := range canalMsg.Data {
			id := parseRowUint(row, "id")
			if id == 0 {
				continue
			}
			if err = s.campaignESRepo.DeleteCampaign(ctx, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// rowToCampaignES Canal 的行数据均为字符串，逐字段转换
func rowToCampaignES(row map[string]interface{}) *es.CampaignES {
	id := parseRowUint(row, "id")
	if id == 0 {
		return nil
	}
	return &es.CampaignES{
		ID:          id,
		Slug:        parseRowString(row, "slug"),
		Title:       parseRowString(row, "title"),
		Description: parseRowString(row, "description"),
		Status:      parseRowString(row, "status"),
		CreatorID:   parseRowUint(row, "creator_id"),
		BrandID:     parseRowUint(row, "brand_id"),
		CoverURL:    parseRowString(row, "cover_url"),
	}
}

func parseRowString(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func parseRowUint(row map[string]interface{}, key string) uint64 {
	s, ok := row[key].(string)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
