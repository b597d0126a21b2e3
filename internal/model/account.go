package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counters 账号级计数器三元组，同时用于当前值与快照
type Counters struct {
	Followers   *int `bson:"followers" json:"followers"`
	HeartsTotal int  `bson:"hearts_total" json:"hearts_total"`
	VideosTotal *int `bson:"videos_total" json:"videos_total"`
}

// AccountSnapshot 某一时刻的计数器快照
type AccountSnapshot struct {
	TS       time.Time `bson:"ts" json:"ts"`
	Counters `bson:",inline"`
}

type AccountMeta struct {
	EngagementRate *float64 `bson:"engagement_rate" json:"engagement_rate"`
}

// Account accounts 集合的平台账号文档。
// 约束：current_counters 与 snapshots 唯一一项来自同一次读取，创建时数值必须一致。
// ID 在装载阶段由 Loader 预生成，JSONL 产物中不出现。
type Account struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CreatorID        string             `bson:"creator_id" json:"creator_id"`
	Platform         string             `bson:"platform" json:"platform"`
	PlatformUserID   string             `bson:"platform_user_id" json:"platform_user_id"`
	Username         string             `bson:"username" json:"username"`
	Nickname         *string            `bson:"nickname" json:"nickname"`
	Verified         *bool              `bson:"verified" json:"verified"`
	ProfileSignature *string            `bson:"profile_signature" json:"profile_signature"`
	AvatarURL        *string            `bson:"avatar_url" json:"avatar_url"`
	Meta             AccountMeta        `bson:"meta" json:"meta"`
	CurrentCounters  Counters           `bson:"current_counters" json:"current_counters"`
	Snapshots        []AccountSnapshot  `bson:"snapshots" json:"snapshots"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
