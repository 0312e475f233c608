package kafka

import (
	"ProductLobby/internal/api/config"
	"ProductLobby/internal/pkg/es"
	"ProductLobby/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	contributionConsumer sarama.ConsumerGroup
	contributionHandler  sarama.ConsumerGroupHandler

	campaignConsumer sarama.ConsumerGroup
	campaignHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	contributionService service.ContributionService,
	campaignESRepo es.CampaignRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	contributionConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaContributionConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	contributionHandler := NewContributionHandler(contributionService)

	campaignConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCampaignConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	campaignHandler := NewCampaignHandler(campaignESRepo)

	return &ConsumerManager{
		contributionConsumer: contributionConsumer,
		contributionHandler:  contributionHandler,
		campaignConsumer:     campaignConsumer,
		campaignHandler:      campaignHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Contribution Consumer
	go func() {
		topic := cfg.KafkaContributionConsumer.Topic
		log.Info("Contribution consumer started", "topic", topic)
		for {
			if err := m.contributionConsumer.Consume(ctx, []string{topic}, m.contributionHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Campaign CDC Consumer
	go func() {
		topic := cfg.KafkaCampaignConsumer.Topic
		log.Info("Campaign consumer started", "topic", topic)
		for {
			if err := m.campaignConsumer.Consume(ctx, []string{topic}, m.campaignHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.contributionConsumer.Close(); err != nil {
		log.Error("Failed to close contribution consumer", "err", err)
	}
	if err := m.campaignConsumer.Close(); err != nil {
		log.Error("Failed to close campaign consumer", "err", err)
	}

	return nil
}
