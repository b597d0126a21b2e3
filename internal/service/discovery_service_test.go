package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, dataDir, subdir, name string) string {
	t.Helper()
	dir := filepath.Join(dataDir, subdir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	return path
}

func TestDiscoverMergesByUsername(t *testing.T) {
	dataDir := t.TempDir()
	videoPath := writeSourceFile(t, dataDir, "videos", "alice.video.json")
	metricsPath := writeSourceFile(t, dataDir, "metrics", "alice.er_metrics.json")
	sentimentPath := writeSourceFile(t, dataDir, "sentiment", "alice_sentiment.json")
	infoPath := writeSourceFile(t, dataDir, "info", "alice.info.json")
	bobVideo := writeSourceFile(t, dataDir, "videos", "bob.video.json")

	files, err := NewDiscoveryService().Discover(context.Background(), dataDir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	alice := files["alice"]
	require.NotNil(t, alice)
	assert.Equal(t, videoPath, alice.Video)
	assert.Equal(t, metricsPath, alice.Metrics)
	assert.Equal(t, sentimentPath, alice.Sentiment)
	assert.Equal(t, infoPath, alice.Info)

	// 只有 video 的创作者其余槽位保持空
	bob := files["bob"]
	require.NotNil(t, bob)
	assert.Equal(t, bobVideo, bob.Video)
	assert.Empty(t, bob.Metrics)
	assert.Empty(t, bob.Sentiment)
	assert.Empty(t, bob.Info)
}

func TestDiscoverIgnoresForeignFiles(t *testing.T) {
	dataDir := t.TempDir()
	writeSourceFile(t, dataDir, "videos", "alice.video.json")
	writeSourceFile(t, dataDir, "videos", "readme.txt")
	writeSourceFile(t, dataDir, "videos", "alice.stats.json")

	files, err := NewDiscoveryService().Discover(context.Background(), dataDir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscoverMissingDirectoriesTreatedAsEmpty(t *testing.T) {
	dataDir := t.TempDir()
	writeSourceFile(t, dataDir, "videos", "alice.video.json")
	// metrics/sentiment/info 目录不存在

	files, err := NewDiscoveryService().Discover(context.Background(), dataDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Empty(t, files["alice"].Metrics)
}

func TestDiscoverEmptyDataDir(t *testing.T) {
	files, err := NewDiscoveryService().Discover(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
