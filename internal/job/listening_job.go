package job

import (
	"ProductLobby/internal/pkg/consts"
	"ProductLobby/internal/pkg/logger"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ListeningJob 定时轮询品牌的公开页面，采集活动的社交提及
type ListeningJob struct {
	listeningSvc service.ListeningService
}

func NewListeningJob(listeningSvc service.ListeningService) *ListeningJob {
	return &ListeningJob{
		listeningSvc: listeningSvc,
	}
}

func (s *ListeningJob) Run() {
	traceID := "job-listening-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例轮询
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.ListeningPollLock, lockValue, time.Minute*10, 1)
	if err != nil || !lock {
		return
	}
	defer redis.UnLock(ctx, consts.ListeningPollLock, lockValue)

	if err = s.listeningSvc.PollAllBrands(ctx); err != nil {
		log.ErrorContext(ctx, "poll brands error", "err", err)
		return
	}

	log.InfoContext(ctx, "social listening poll success")
}
