package model

// 四类原始抓取产物的解码结构。
// 数值字段可能以数字或数字字符串出现，统一用 any 承载，后续经 util.ToInt 等做宽松转换。

type VideoSource struct {
	Nickname string      `json:"nickname"`
	Videos   []VideoItem `json:"videos"`
}

type VideoItem struct {
	VideoID  any        `json:"videoId"`
	VideoURL string     `json:"videoUrl"`
	Stats    VideoStats `json:"stats"`
}

type VideoStats struct {
	ViewCount    any `json:"viewCount"`
	LikeCount    any `json:"likeCount"`
	CommentCount any `json:"commentCount"`
	ShareCount   any `json:"shareCount"`
}

type MetricsSource struct {
	Nickname            string `json:"nickname"`
	FollowersCount      any    `json:"followers_count"`
	TotalVideosAnalyzed any    `json:"total_videos_analyzed"`
	EngagementRate      any    `json:"engagement_rate"`
	Timestamp           string `json:"timestamp"`
}

type InfoSource struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Nickname  string  `json:"nickname"`
	Signature *string `json:"signature"`
}

type SentimentSource struct {
	Positive       any `json:"positive"`
	Negative       any `json:"negative"`
	Neutral        any `json:"neutral"`
	Total          any `json:"total"`
	SentimentScore any `json:"sentiment_score"`
}

// Empty 判断情感文件是否为空文档（空文档不产出摘要）
func (s *SentimentSource) Empty() bool {
	return s.Positive == nil && s.Negative == nil && s.Neutral == nil &&
		s.Total == nil && s.SentimentScore == nil
}
