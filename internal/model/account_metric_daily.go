package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountMetricDaily account_metrics_daily 集合的日级时间序列文档，
// 仅在 metrics 文件携带可解析时间戳时产出，date 为 UTC 当日零点
type AccountMetricDaily struct {
	AccountIDRef string    `bson:"-" json:"account_id_ref"`
	Date         time.Time `bson:"date" json:"date"`
	Counters     `bson:",inline"`
}

// ResolvedAccountMetricDaily 入库形态
type ResolvedAccountMetricDaily struct {
	AccountID          primitive.ObjectID `bson:"account_id"`
	AccountMetricDaily `bson:",inline"`
}
