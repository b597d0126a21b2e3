package service

import (
	"Myfluence/internal/model"
	"Myfluence/internal/pkg/consts"
	"Myfluence/internal/pkg/util"
	"time"
)

type TransformService interface {
	TransformCreator(video *model.VideoSource, metrics *model.MetricsSource, info *model.InfoSource,
		username, country string) (*model.Creator, *model.Account, []*model.Post, *model.AccountMetricDaily)
	BuildSentimentSummary(sent *model.SentimentSource, username string) *model.SentimentSummary
}

type transformServiceImpl struct {
	now func() time.Time
}

func NewTransformService() TransformService {
	return &transformServiceImpl{now: time.Now}
}

// TransformCreator 将单个创作者的 video（必需）、metrics（必需）、info（可选）源文档
// 转换为档案、账号、帖子、日级指标四类归一化文档
func (s *transformServiceImpl) TransformCreator(video *model.VideoSource, metrics *model.MetricsSource,
	info *model.InfoSource, username, country string) (*model.Creator, *model.Account, []*model.Post, *model.AccountMetricDaily) {
	now := s.now().UTC()
	creatorID := consts.CreatorIDPrefix + username

	nickname := video.Nickname
	if nickname == "" {
		nickname = metrics.Nickname
	}

	var signature *string
	platformUserID := username
	if info != nil {
		signature = info.Signature
		if info.ID != "" {
			platformUserID = info.ID
		}
	}

	creator := &model.Creator{
		CreatorID:     creatorID,
		Name:          util.PtrStr(nickname),
		HandlePrimary: username,
		Categories:    []string{},
		Bio:           signature,
		Country:       country,
		Tags:          []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// hearts_total 由帖子列表自行求和，与 metrics 文件自带的点赞总数相互独立，
	// 保留两份便于下游交叉核对
	heartsTotal := 0
	for _, v := range video.Videos {
		heartsTotal += util.ToIntOr(v.Stats.LikeCount, 0)
	}

	counters := model.Counters{
		Followers:   util.ToInt(metrics.FollowersCount),
		HeartsTotal: heartsTotal,
		VideosTotal: util.ToInt(metrics.TotalVideosAnalyzed),
	}

	snapTS, snapOK := util.ParseISOTimestamp(metrics.Timestamp)
	snapAt := now
	if snapOK {
		snapAt = snapTS
	}

	account := &model.Account{
		CreatorID:        creatorID,
		Platform:         consts.Platform,
		PlatformUserID:   platformUserID,
		Username:         username,
		Nickname:         util.PtrStr(nickname),
		ProfileSignature: signature,
		Meta:             model.AccountMeta{EngagementRate: util.ToFloat(metrics.EngagementRate)},
		CurrentCounters:  counters,
		Snapshots: []model.AccountSnapshot{
			{TS: snapAt, Counters: counters},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	posts := make([]*model.Post, 0, len(video.Videos))
	for _, v := range video.Videos {
		if p := buildPost(v, username, now); p != nil {
			posts = append(posts, p)
		}
	}

	var daily *model.AccountMetricDaily
	if snapOK {
		daily = &model.AccountMetricDaily{
			AccountIDRef: username,
			Date:         util.DayFloor(snapTS),
			Counters:     counters,
		}
	}

	return creator, account, posts, daily
}

// buildPost 缺少 videoId 的帖子直接丢弃，返回 nil
func buildPost(v model.VideoItem, username string, now time.Time) *model.Post {
	postID := util.ToString(v.VideoID)
	if postID == "" {
		return nil
	}

	views := util.ToInt(v.Stats.ViewCount)
	likes := util.ToInt(v.Stats.LikeCount)
	comments := util.ToInt(v.Stats.CommentCount)
	shares := util.ToInt(v.Stats.ShareCount)

	total := util.IntValue(likes) + util.IntValue(comments) + util.IntValue(shares)

	// 观看数为 0 时不可计算比率，保持 null；观看数为正时恒可计算，零互动得到 0.0
	var ratio *float64
	if views != nil && *views > 0 {
		ratio = util.PtrFloat(util.Round2(float64(total) / float64(*views) * 100))
	}

	return &model.Post{
		AccountIDRef: username,
		Platform:     consts.Platform,
		PostID:       postID,
		PostURL:      util.PtrStr(v.VideoURL),
		Hashtags:     []string{},
		Media:        model.PostMedia{},
		Stats: model.PostStats{
			Views:    views,
			Likes:    likes,
			Comments: comments,
			Shares:   shares,
		},
		Engagement: model.PostEngagement{
			Total:                    total,
			ViewToEngagementRatioPct: ratio,
		},
		PinFlags:        map[string]any{},
		Labels:          []string{},
		CreatedAtIngest: now,
		UpdatedAt:       now,
	}
}

// BuildSentimentSummary 构建情感摘要；空源文档返回 nil。
// 净情感分 = (positive - negative) / total * 100，total 为 0 或计数缺失时
// 回退为源文件预计算的 sentiment_score，再不可得则为 null。
func (s *transformServiceImpl) BuildSentimentSummary(sent *model.SentimentSource, username string) *model.SentimentSummary {
	if sent == nil || sent.Empty() {
		return nil
	}

	pos := util.ToInt(sent.Positive)
	neg := util.ToInt(sent.Negative)
	neu := util.ToInt(sent.Neutral)
	total := util.ToInt(sent.Total)

	var score *float64
	if total != nil && *total > 0 && pos != nil && neg != nil {
		score = util.PtrFloat(util.Round2(float64(*pos-*neg) / float64(*total) * 100))
	} else if fallback := util.ToFloat(sent.SentimentScore); fallback != nil {
		score = fallback
	}

	size := total
	if total != nil && *total == 0 {
		size = nil
	}

	return &model.SentimentSummary{
		AccountIDRef: username,
		Window: model.SentimentWindow{
			Type: "sample",
			Size: size,
		},
		Counts: model.SentimentCounts{
			Positive: pos,
			Negative: neg,
			Neutral:  neu,
			Total:    total,
		},
		NetSentimentScorePct: score,
		ComputedAt:           s.now().UTC(),
	}
}
