package job

import (
	"Myfluence/internal/etl/config"
	"Myfluence/internal/pkg/logger"
	"Myfluence/internal/pkg/mongo"
	"Myfluence/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// IngestJob 一次完整的转换与装载：发现 -> 转换 -> 写 JSONL 产物 -> 可选入库。
// 同时实现 cron.Job，供调度模式周期执行。
type IngestJob struct {
	cfg      *config.Config
	pipeline service.PipelineService
	insert   bool
}

func NewIngestJob(cfg *config.Config, pipeline service.PipelineService, insert bool) *IngestJob {
	return &IngestJob{
		cfg:      cfg,
		pipeline: pipeline,
		insert:   insert,
	}
}

// RunOnce 跑一趟流水线。未发现创作者或目标库不可达属于整体失败；
// 只要创作者集合非空，JSONL 产物总会写出，与入库成败无关。
func (s *IngestJob) RunOnce(ctx context.Context) error {
	batch, err := s.pipeline.Run(ctx)
	if err != nil {
		log.ErrorContext(ctx, "pipeline run failed", "err", err)
		return err
	}

	if err := s.pipeline.WriteArtifacts(ctx, batch); err != nil {
		log.ErrorContext(ctx, "write artifacts failed", "err", err)
		return err
	}

	if !s.insert {
		log.InfoContext(ctx, "mongodb insertion skipped", "counts", batch.Counts())
		return nil
	}

	db, err := mongo.InitMongo(s.cfg.Mongo)
	if err != nil {
		// 产物已落盘，入库失败不影响其独立使用
		log.ErrorContext(ctx, "mongodb unreachable, artifacts remain usable", "err", err)
		return err
	}
	defer func() {
		_ = db.Client().Disconnect(ctx)
	}()

	report, err := mongo.NewLoader(db).LoadBatch(ctx, batch)
	if err != nil {
		log.ErrorContext(ctx, "mongodb load failed", "err", err)
		return err
	}

	log.InfoContext(ctx, "mongodb insertion completed",
		"content_creators", report.Creators,
		"accounts", report.Accounts,
		"posts", report.Posts,
		"account_metrics_daily", report.AccountMetricsDaily,
		"sentiment_summaries", report.SentimentSummaries,
	)
	return nil
}

// Run 实现 cron.Job，每次执行带独立的 trace_id
func (s *IngestJob) Run() {
	traceID := "run-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.RunOnce(ctx); err != nil {
		log.ErrorContext(ctx, "scheduled ingest run failed", "err", err)
	}
}
