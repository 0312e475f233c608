package job

import (
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/logger"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/pkg/util"
	"ProductLobby/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CampaignMetricsJob 每日将有新事件的活动刷入指标快照表
type CampaignMetricsJob struct {
	campaignMetricSvc service.CampaignMetricService
}

func NewCampaignMetricsJob(campaignMetricSvc service.CampaignMetricService) *CampaignMetricsJob {
	return &CampaignMetricsJob{
		campaignMetricSvc: campaignMetricSvc,
	}
}

func (s *CampaignMetricsJob) Run() {
	traceID := "job-campaign-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 原子重命名脏集合，避免与在线写入竞争
	processingKey := consts.CampaignDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.CampaignDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get campaign dirty set error", "err", err)
		return
	}

	campaignIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert campaign set to int slice error", "err", err)
		return
	}

	for _, cid := range campaignIDs {
		err = s.campaignMetricSvc.SyncCampaignMetric(ctx, cid)
		if err != nil {
			log.ErrorContext(ctx, "sync campaign daily metric error", "cid", cid, "err", err)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete campaign processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync campaign metrics success", "campaign_count", len(campaignIDs))
}
