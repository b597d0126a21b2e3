package service

import (
	"Myfluence/internal/etl/config"
	"Myfluence/internal/model"
	"Myfluence/internal/pkg/consts"
	"Myfluence/internal/pkg/util"
	"context"
	log "log/slog"
	"path/filepath"
	"sort"
)

type PipelineService interface {
	Run(ctx context.Context) (*model.Batch, error)
	WriteArtifacts(ctx context.Context, batch *model.Batch) error
}

type pipelineServiceImpl struct {
	cfg       *config.Config
	discovery DiscoveryService
	transform TransformService
}

func NewPipelineService(cfg *config.Config, discovery DiscoveryService, transform TransformService) PipelineService {
	return &pipelineServiceImpl{
		cfg:       cfg,
		discovery: discovery,
		transform: transform,
	}
}

// Run 对发现的全部创作者做单趟串行转换。
// video 或 metrics 缺失、不可解析的创作者整体跳过，不产出任何类别的残缺记录。
func (s *pipelineServiceImpl) Run(ctx context.Context) (*model.Batch, error) {
	files, err := s.discovery.Discover(ctx, s.cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoCreatorsFound
	}
	log.InfoContext(ctx, "creators discovered", "count", len(files), "data_dir", s.cfg.Data.Dir)

	// 固定按 username 排序遍历，保证同样输入下产物内容稳定
	usernames := make([]string, 0, len(files))
	for u := range files {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	batch := model.NewBatch()
	for _, username := range usernames {
		s.processCreator(ctx, username, files[username], batch)
	}
	return batch, nil
}

func (s *pipelineServiceImpl) processCreator(ctx context.Context, username string, cf *model.CreatorFiles, batch *model.Batch) {
	if cf.Video == "" {
		log.WarnContext(ctx, "skipping creator: no video file", "username", username)
		return
	}
	if cf.Metrics == "" {
		log.WarnContext(ctx, "skipping creator: no metrics file", "username", username)
		return
	}

	var video model.VideoSource
	if err := util.ReadJSON(cf.Video, &video); err != nil {
		log.ErrorContext(ctx, "skipping creator: video file unreadable", "username", username, "err", err)
		return
	}
	var metrics model.MetricsSource
	if err := util.ReadJSON(cf.Metrics, &metrics); err != nil {
		log.ErrorContext(ctx, "skipping creator: metrics file unreadable", "username", username, "err", err)
		return
	}

	var info *model.InfoSource
	if cf.Info != "" {
		var i model.InfoSource
		if util.ReadJSONLenient(cf.Info, &i) {
			info = &i
		}
	}

	creator, account, posts, daily := s.transform.TransformCreator(&video, &metrics, info, username, s.cfg.Data.Country)
	batch.Creators = append(batch.Creators, creator)
	batch.Accounts = append(batch.Accounts, account)
	batch.Posts = append(batch.Posts, posts...)
	if daily != nil {
		batch.AccountMetrics = append(batch.AccountMetrics, daily)
	}

	if cf.Sentiment != "" {
		var sent model.SentimentSource
		if util.ReadJSONLenient(cf.Sentiment, &sent) {
			if summary := s.transform.BuildSentimentSummary(&sent, username); summary != nil {
				batch.Sentiments = append(batch.Sentiments, summary)
			}
		}
	}

	log.InfoContext(ctx, "creator transformed", "username", username, "posts", len(posts))
}

// WriteArtifacts 五个类别各写一个 JSONL 文件，逐文件覆盖，互相不构成事务
func (s *pipelineServiceImpl) WriteArtifacts(ctx context.Context, batch *model.Batch) error {
	outDir := s.cfg.Data.OutDir
	if err := util.WriteJSONL(filepath.Join(outDir, consts.FileCreators), batch.Creators); err != nil {
		return err
	}
	if err := util.WriteJSONL(filepath.Join(outDir, consts.FileAccounts), batch.Accounts); err != nil {
		return err
	}
	if err := util.WriteJSONL(filepath.Join(outDir, consts.FilePosts), batch.Posts); err != nil {
		return err
	}
	if err := util.WriteJSONL(filepath.Join(outDir, consts.FileAccountMetricsDaily), batch.AccountMetrics); err != nil {
		return err
	}
	if err := util.WriteJSONL(filepath.Join(outDir, consts.FileSentimentSummaries), batch.Sentiments); err != nil {
		return err
	}

	log.InfoContext(ctx, "jsonl artifacts written", "outdir", outDir,
		"creators", len(batch.Creators),
		"accounts", len(batch.Accounts),
		"posts", len(batch.Posts),
		"account_metrics_daily", len(batch.AccountMetrics),
		"sentiment_summaries", len(batch.Sentiments))
	return nil
}
