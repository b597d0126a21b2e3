package consts

const (
	Platform = "tiktok"

	CreatorIDPrefix = "kol_"
)

// 数据源目录及文件名后缀
const (
	DirVideos    = "videos"
	DirMetrics   = "metrics"
	DirSentiment = "sentiment"
	DirInfo      = "info"

	SuffixVideo     = ".video.json"
	SuffixMetrics   = ".er_metrics.json"
	SuffixSentiment = "_sentiment.json"
	SuffixInfo      = ".info.json"
)

// MongoDB 集合名
const (
	CollCreators            = "content_creators"
	CollAccounts            = "accounts"
	CollPosts               = "posts"
	CollAccountMetricsDaily = "account_metrics_daily"
	CollSentimentSummaries  = "sentiment_summaries"
)

// JSONL 输出文件名
const (
	FileCreators            = "creators.jsonl"
	FileAccounts            = "accounts.jsonl"
	FilePosts               = "posts.jsonl"
	FileAccountMetricsDaily = "account_metrics_daily.jsonl"
	FileSentimentSummaries  = "sentiment_summaries.jsonl"
)
