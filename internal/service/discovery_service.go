package service

import (
	"Myfluence/internal/model"
	"Myfluence/internal/pkg/consts"
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"strings"
)

type DiscoveryService interface {
	Discover(ctx context.Context, dataDir string) (map[string]*model.CreatorFiles, error)
}

type discoveryServiceImpl struct{}

func NewDiscoveryService() DiscoveryService {
	return &discoveryServiceImpl{}
}

// Discover 两步发现：先对四个目录各自建立 username -> 路径 的独立映射，
// 再按 username 取并集合并，缺失的源保持空串。目录不存在视为空目录。
func (s *discoveryServiceImpl) Discover(ctx context.Context, dataDir string) (map[string]*model.CreatorFiles, error) {
	sources := []struct {
		dir    string
		suffix string
		assign func(*model.CreatorFiles, string)
	}{
		{consts.DirVideos, consts.SuffixVideo, func(c *model.CreatorFiles, p string) { c.Video = p }},
		{consts.DirMetrics, consts.SuffixMetrics, func(c *model.CreatorFiles, p string) { c.Metrics = p }},
		{consts.DirSentiment, consts.SuffixSentiment, func(c *model.CreatorFiles, p string) { c.Sentiment = p }},
		{consts.DirInfo, consts.SuffixInfo, func(c *model.CreatorFiles, p string) { c.Info = p }},
	}

	merged := make(map[string]*model.CreatorFiles)
	for _, src := range sources {
		paths := scanSourceDir(ctx, filepath.Join(dataDir, src.dir), src.suffix)
		for username, path := range paths {
			cf, ok := merged[username]
			if !ok {
				cf = &model.CreatorFiles{}
				merged[username] = cf
			}
			src.assign(cf, path)
		}
	}
	return merged, nil
}

// scanSourceDir 扫描单个源目录，文件名去掉后缀即为 username。
// 同一目录内同一 username 出现多个文件属于可疑输入，告警后保留字典序靠后的一个。
func scanSourceDir(ctx context.Context, dir, suffix string) map[string]string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.InfoContext(ctx, "source directory not readable, treated as empty", "dir", dir)
		return map[string]string{}
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		username := strings.TrimSuffix(e.Name(), suffix)
		if username == "" {
			continue
		}
		if prev, dup := out[username]; dup {
			log.WarnContext(ctx, "duplicate source file for creator, keeping the later one",
				"username", username, "kept", e.Name(), "replaced", filepath.Base(prev))
		}
		out[username] = filepath.Join(dir, e.Name())
	}
	return out
}
