package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SentimentWindow struct {
	Type string `bson:"type" json:"type"`
	Size *int   `bson:"size" json:"size"`
}

type SentimentCounts struct {
	Positive *int `bson:"positive" json:"positive"`
	Negative *int `bson:"negative" json:"negative"`
	Neutral  *int `bson:"neutral" json:"neutral"`
	Total    *int `bson:"total" json:"total"`
}

// EngagementReference 摘要计算时点的互动参照值，当前数据源不提供
type EngagementReference struct {
	FollowersAtCalc *int     `bson:"followers_at_calc" json:"followers_at_calc"`
	ErPct           *float64 `bson:"er_pct" json:"er_pct"`
	FSI             *float64 `bson:"fsi" json:"fsi"`
}

// SentimentSummary sentiment_summaries 集合的情感摘要文档（未解析形态）
type SentimentSummary struct {
	AccountIDRef         string              `bson:"-" json:"account_id_ref"`
	PostID               *string             `bson:"post_id" json:"post_id"`
	Window               SentimentWindow     `bson:"window" json:"window"`
	Counts               SentimentCounts     `bson:"counts" json:"counts"`
	NetSentimentScorePct *float64            `bson:"net_sentiment_score_pct" json:"net_sentiment_score_pct"`
	EngagementReference  EngagementReference `bson:"engagement_reference" json:"engagement_reference"`
	ComputedAt           time.Time           `bson:"computed_at" json:"computed_at"`
}

// ResolvedSentimentSummary 入库形态
type ResolvedSentimentSummary struct {
	AccountID        primitive.ObjectID `bson:"account_id"`
	SentimentSummary `bson:",inline"`
}
