package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"parks-api/internal/logger"
)

// ErrMalformed：目录文件结构不符合预期（非数组、缺少必填键、数值越界、id 重复）
var ErrMalformed = errors.New("malformed catalog file")

// Load：从磁盘读取 JSON 数组并解码为有序记录序列
// 背景：仅在进程启动时同步调用一次；任何失败都应视为部署配置错误，由调用方终止启动。
// 约束：保留文件顺序；未知键忽略；可选键可缺失或为 null；不做重试。
func Load[T Record](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	out, err := Decode[T](b)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	logger.L().Debug("catalog_file_read", "path", path, "bytes", len(b), "records", len(out))
	return out, nil
}

// Decode：解码并校验一份目录文档
func Decode[T Record](b []byte) ([]T, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		// 字面量 null 不是数组
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}
	var zero T
	required := zero.RequiredKeys()
	for i, obj := range raw {
		if obj == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrMalformed, i)
		}
		for _, k := range required {
			v, ok := obj[k]
			if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				return nil, fmt.Errorf("%w: element %d missing required key %q", ErrMalformed, i, k)
			}
		}
	}
	out := make([]T, 0, len(raw))
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	seen := make(map[uint32]struct{}, len(out))
	for i, rec := range out {
		id := rec.RecordID()
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: element %d duplicates id %d", ErrMalformed, i, id)
		}
		seen[id] = struct{}{}
	}
	return out, nil
}
