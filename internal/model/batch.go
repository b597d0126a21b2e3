package model

// CreatorFiles 单个创作者在四个数据源目录下发现的文件路径，缺失的源为空串
type CreatorFiles struct {
	Video     string
	Metrics   string
	Sentiment string
	Info      string
}

// Batch 一次流水线运行累积的五类待导出文档，按发现顺序追加
type Batch struct {
	Creators       []*Creator
	Accounts       []*Account
	Posts          []*Post
	AccountMetrics []*AccountMetricDaily
	Sentiments     []*SentimentSummary
}

func NewBatch() *Batch {
	return &Batch{
		Creators:       []*Creator{},
		Accounts:       []*Account{},
		Posts:          []*Post{},
		AccountMetrics: []*AccountMetricDaily{},
		Sentiments:     []*SentimentSummary{},
	}
}

// Counts 各类别文档数量，用于运行结束后的汇总日志
func (b *Batch) Counts() map[string]int {
	return map[string]int{
		"creators":              len(b.Creators),
		"accounts":              len(b.Accounts),
		"posts":                 len(b.Posts),
		"account_metrics_daily": len(b.AccountMetrics),
		"sentiment_summaries":   len(b.Sentiments),
	}
}
