package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"alice"}`), 0o644))

	var doc map[string]any
	require.NoError(t, ReadJSON(path, &doc))
	assert.Equal(t, "alice", doc["name"])

	assert.Error(t, ReadJSON(filepath.Join(dir, "missing.json"), &doc))

	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))
	assert.Error(t, ReadJSON(path, &doc))
}

func TestReadJSONLenient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	var doc map[string]any
	assert.False(t, ReadJSONLenient(filepath.Join(dir, "missing.json"), &doc))

	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))
	assert.False(t, ReadJSONLenient(path, &doc))

	require.NoError(t, os.WriteFile(path, []byte(`{"positive":3}`), 0o644))
	assert.True(t, ReadJSONLenient(path, &doc))
}

func TestWriteJSONL(t *testing.T) {
	dir := t.TempDir()
	// 父目录不存在时自动创建
	path := filepath.Join(dir, "out", "docs.jsonl")

	docs := []map[string]any{
		{"name": "Putri Aurélie 犬"},
		{"name": "bob"},
	}
	require.NoError(t, WriteJSONL(path, docs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)

	// 非 ASCII 字符不转义
	assert.Contains(t, lines[0], "Putri Aurélie 犬")

	// 重写覆盖旧内容
	require.NoError(t, WriteJSONL(path, docs[:1]))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 1)
}

func TestWriteJSONLEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.jsonl")
	require.NoError(t, WriteJSONL(path, []map[string]any{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
