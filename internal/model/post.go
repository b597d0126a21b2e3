package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostStats struct {
	Views    *int `bson:"views" json:"views"`
	Likes    *int `bson:"likes" json:"likes"`
	Comments *int `bson:"comments" json:"comments"`
	Shares   *int `bson:"shares" json:"shares"`
	// 源数据不提供收藏数，恒为 null
	Bookmarks *int `bson:"bookmarks" json:"bookmarks"`
}

type PostEngagement struct {
	Total                    int      `bson:"total" json:"total"`
	ViewToEngagementRatioPct *float64 `bson:"view_to_engagement_ratio_pct" json:"view_to_engagement_ratio_pct"`
	ErPct                    *float64 `bson:"er_pct" json:"er_pct"`
}

type PostMedia struct {
	DurationSec *float64 `bson:"duration_sec" json:"duration_sec"`
	VideoHeight *int     `bson:"video_height" json:"video_height"`
	VideoWidth  *int     `bson:"video_width" json:"video_width"`
	Cover       *string  `bson:"cover" json:"cover"`
	MusicTitle  *string  `bson:"music_title" json:"music_title"`
	MusicAuthor *string  `bson:"music_author" json:"music_author"`
}

// Post posts 集合的帖子文档（未解析形态）。
// AccountIDRef 是归属账号的占位引用（创作者 handle），只出现在 JSONL 产物中，
// 入库前由 Loader 替换为真实的账号 ObjectId，见 ResolvedPost。
type Post struct {
	AccountIDRef      string         `bson:"-" json:"account_id_ref"`
	Platform          string         `bson:"platform" json:"platform"`
	PostID            string         `bson:"post_id" json:"post_id"`
	PostURL           *string        `bson:"post_url" json:"post_url"`
	CreatedAtPlatform *time.Time     `bson:"created_at_platform" json:"created_at_platform"`
	Caption           *string        `bson:"caption" json:"caption"`
	Language          *string        `bson:"language" json:"language"`
	Hashtags          []string       `bson:"hashtags" json:"hashtags"`
	Media             PostMedia      `bson:"media" json:"media"`
	Stats             PostStats      `bson:"stats" json:"stats"`
	Engagement        PostEngagement `bson:"engagement" json:"engagement"`
	PinFlags          map[string]any `bson:"pin_flags" json:"pin_flags"`
	Labels            []string       `bson:"labels" json:"labels"`
	CreatedAtIngest   time.Time      `bson:"created_at_ingest" json:"created_at_ingest"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updated_at"`
}

// ResolvedPost 入库形态：占位引用已替换为账号 ObjectId
type ResolvedPost struct {
	AccountID primitive.ObjectID `bson:"account_id"`
	Post      `bson:",inline"`
}
