package mongo

import (
	"Myfluence/internal/model"
	"Myfluence/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// WriteFailure 单条文档写入失败的位置与原因
type WriteFailure struct {
	Index  int
	Reason string
}

// InsertResult 一次批量写入的统一结果，屏蔽驱动的部分失败异常形态
type InsertResult struct {
	Submitted int
	Succeeded []primitive.ObjectID
	Failed    []WriteFailure
}

// InsertedCount 成功写入条数
func (r InsertResult) InsertedCount() int {
	return r.Submitted - len(r.Failed)
}

// CollectionResult 单个集合的装载汇总。
// Dropped 为占位引用未能解析而被排除的文档数，不计入 Errors。
type CollectionResult struct {
	Inserted int `json:"inserted"`
	Errors   int `json:"errors"`
	Dropped  int `json:"dropped"`
}

// LoadReport 按集合汇总的装载结果
type LoadReport struct {
	Creators            CollectionResult `json:"content_creators"`
	Accounts            CollectionResult `json:"accounts"`
	Posts               CollectionResult `json:"posts"`
	AccountMetricsDaily CollectionResult `json:"account_metrics_daily"`
	SentimentSummaries  CollectionResult `json:"sentiment_summaries"`
}

// Loader 按固定顺序把一个 Batch 批量写入各集合，并在写入依赖集合前
// 把占位引用解析为真实的账号 ObjectId
type Loader struct {
	db *mongo.Database
}

func NewLoader(db *mongo.Database) *Loader {
	return &Loader{db: db}
}

// LoadBatch 装载顺序：creators 与 accounts 互不依赖、并发写入；
// 账号引用映射就绪后，posts / account_metrics_daily / sentiment_summaries 再并发写入。
// 单集合内部分失败不会中断其余集合，最终返回逐集合的计数报告。
func (s *Loader) LoadBatch(ctx context.Context, batch *model.Batch) (*LoadReport, error) {
	report := &LoadReport{}

	// 账号 _id 在客户端预生成，写入成败可逐条对应到 username
	for _, a := range batch.Accounts {
		a.ID = primitive.NewObjectID()
	}

	var accountRes InsertResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res := s.insertMany(gctx, consts.CollCreators, toAnySlice(batch.Creators))
		report.Creators = CollectionResult{Inserted: res.InsertedCount(), Errors: len(res.Failed)}
		return nil
	})
	g.Go(func() error {
		accountRes = s.insertMany(gctx, consts.CollAccounts, toAnySlice(batch.Accounts))
		report.Accounts = CollectionResult{Inserted: accountRes.InsertedCount(), Errors: len(accountRes.Failed)}
		return nil
	})
	_ = g.Wait()

	refs := BuildAccountRefMap(batch.Accounts, accountRes)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, dropped := ResolvePosts(batch.Posts, refs)
		report.Posts = s.insertResolved(gctx, consts.CollPosts, docs, dropped)
		return nil
	})
	g.Go(func() error {
		docs, dropped := ResolveAccountMetrics(batch.AccountMetrics, refs)
		report.AccountMetricsDaily = s.insertResolved(gctx, consts.CollAccountMetricsDaily, docs, dropped)
		return nil
	})
	g.Go(func() error {
		docs, dropped := ResolveSentiments(batch.Sentiments, refs)
		report.SentimentSummaries = s.insertResolved(gctx, consts.CollSentimentSummaries, docs, dropped)
		return nil
	})
	_ = g.Wait()

	return report, nil
}

func (s *Loader) insertResolved(ctx context.Context, coll string, docs []any, dropped int) CollectionResult {
	if dropped > 0 {
		log.WarnContext(ctx, "documents dropped: account reference unresolved",
			"collection", coll, "dropped", dropped)
	}
	res := s.insertMany(ctx, coll, docs)
	return CollectionResult{Inserted: res.InsertedCount(), Errors: len(res.Failed), Dropped: dropped}
}

// insertMany 无序批量插入：个别文档被拒不中断整批，整批失败（如连接中断）
// 把该集合的全部文档记为失败，控制权始终交还调用方
func (s *Loader) insertMany(ctx context.Context, coll string, docs []any) InsertResult {
	res := InsertResult{Submitted: len(docs)}
	if len(docs) == 0 {
		return res
	}

	out, err := s.db.Collection(coll).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) {
			for _, we := range bwe.WriteErrors {
				res.Failed = append(res.Failed, WriteFailure{Index: we.Index, Reason: we.Message})
			}
			log.WarnContext(ctx, "bulk insert partially failed",
				"collection", coll, "submitted", res.Submitted, "errors", len(res.Failed))
		} else {
			for i := range docs {
				res.Failed = append(res.Failed, WriteFailure{Index: i, Reason: err.Error()})
			}
			log.ErrorContext(ctx, "bulk insert failed", "collection", coll, "err", err)
			return res
		}
	}

	if out != nil {
		for _, id := range out.InsertedIDs {
			if oid, ok := id.(primitive.ObjectID); ok {
				res.Succeeded = append(res.Succeeded, oid)
			}
		}
	}
	return res
}

// BuildAccountRefMap 依据账号批量写入结果建立 username -> ObjectId 映射，
// 写入失败的账号不进入映射，其从属文档随后会被丢弃并计数
func BuildAccountRefMap(accounts []*model.Account, res InsertResult) map[string]primitive.ObjectID {
	failed := make(map[int]struct{}, len(res.Failed))
	for _, f := range res.Failed {
		failed[f.Index] = struct{}{}
	}

	refs := make(map[string]primitive.ObjectID, len(accounts))
	for i, a := range accounts {
		if _, bad := failed[i]; bad {
			continue
		}
		refs[a.Username] = a.ID
	}
	return refs
}

// ResolvePosts 构造新的已解析文档而非原地改写，未能解析的文档被排除并计数
func ResolvePosts(posts []*model.Post, refs map[string]primitive.ObjectID) ([]any, int) {
	resolved := make([]any, 0, len(posts))
	dropped := 0
	for _, p := range posts {
		id, ok := refs[p.AccountIDRef]
		if !ok {
			dropped++
			continue
		}
		resolved = append(resolved, model.ResolvedPost{AccountID: id, Post: *p})
	}
	return resolved, dropped
}

func ResolveAccountMetrics(metrics []*model.AccountMetricDaily, refs map[string]primitive.ObjectID) ([]any, int) {
	resolved := make([]any, 0, len(metrics))
	dropped := 0
	for _, m := range metrics {
		id, ok := refs[m.AccountIDRef]
		if !ok {
			dropped++
			continue
		}
		resolved = append(resolved, model.ResolvedAccountMetricDaily{AccountID: id, AccountMetricDaily: *m})
	}
	return resolved, dropped
}

func ResolveSentiments(sentiments []*model.SentimentSummary, refs map[string]primitive.ObjectID) ([]any, int) {
	resolved := make([]any, 0, len(sentiments))
	dropped := 0
	for _, s := range sentiments {
		id, ok := refs[s.AccountIDRef]
		if !ok {
			dropped++
			continue
		}
		resolved = append(resolved, model.ResolvedSentimentSummary{AccountID: id, SentimentSummary: *s})
	}
	return resolved, dropped
}

func toAnySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
