package util

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ReadJSON 读取并解析单个 JSON 文件，读取或解析失败都会报错
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

// ReadJSONLenient 容错读取：文件缺失或内容损坏时返回 false，不向上报错
func ReadJSONLenient(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// WriteJSONL 将文档列表写为 JSON Lines 文件，每行一条记录，整体覆盖旧文件
func WriteJSONL[T any](path string, docs []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "mkdir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return errors.Wrapf(err, "encode %s", path)
		}
	}
	return w.Flush()
}
