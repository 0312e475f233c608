package wire

import (
	"ProductLobby/internal/api"
	"ProductLobby/internal/api/config"
	"ProductLobby/internal/api/handler"
	"ProductLobby/internal/job"
	"ProductLobby/internal/pkg/cron"
	"ProductLobby/internal/pkg/es"
	"ProductLobby/internal/pkg/kafka"
	pkgmongo "ProductLobby/internal/pkg/mongo"
	"ProductLobby/internal/repository"
	"ProductLobby/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	campaignRepo := repository.NewCampaignRepo(db)
	contributionRepo := repository.NewContributionRepo(db)
	rewardRepo := repository.NewRewardRepo(db)
	segmentRepo := repository.NewSegmentRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	campaignMetricRepo := repository.NewCampaignMetricRepo(db)

	campaignESRepo := es.NewCampaignRepo(es.Client)
	notificationRepo := pkgmongo.NewNotificationRepo(mongoDB)

	listeningClient := resty.New().
		SetHeader("User-Agent", cfg.Listening.UserAgent).
		SetTimeout(time.Duration(cfg.Listening.TimeoutSeconds) * time.Second)

	userService := service.NewUserService(userRepo, roleRepo)
	rewardService := service.NewRewardService(rewardRepo, campaignRepo, notificationRepo)
	contributionService := service.NewContributionService(contributionRepo, campaignRepo, userRepo, rewardService)
	campaignService := service.NewCampaignService(campaignRepo, contributionRepo, brandRepo, campaignESRepo, notificationRepo)
	demandSignalService := service.NewDemandSignalService(campaignRepo, contributionRepo, brandRepo)
	campaignMetricService := service.NewCampaignMetricService(campaignMetricRepo, campaignRepo, contributionRepo, brandRepo)
	segmentService := service.NewSegmentService(campaignRepo, contributionRepo, segmentRepo)
	brandService := service.NewBrandService(brandRepo, campaignRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	listeningService := service.NewListeningService(brandRepo, campaignRepo, contributionRepo, listeningClient)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		CampaignHandler:     handler.NewCampaignHandler(campaignService),
		ContributionHandler: handler.NewContributionHandler(contributionService),
		InsightHandler:      handler.NewInsightHandler(demandSignalService, campaignMetricService),
		SegmentHandler:      handler.NewSegmentHandler(segmentService),
		RewardHandler:       handler.NewRewardHandler(rewardService),
		BrandHandler:        handler.NewBrandHandler(brandService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, contributionService, campaignESRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewCampaignMetricsJob(campaignMetricService),
		job.NewListeningJob(listeningService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
