package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISOTimestamp(t *testing.T) {
	ts, ok := ParseISOTimestamp("2025-06-01T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), ts)

	// 带时区偏移的写法换算回 UTC
	ts, ok = ParseISOTimestamp("2025-06-01T17:30:00+07:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), ts)

	// 无时区信息按 UTC 处理
	ts, ok = ParseISOTimestamp("2025-06-01T10:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), ts)

	_, ok = ParseISOTimestamp("")
	assert.False(t, ok)
	_, ok = ParseISOTimestamp("not-a-time")
	assert.False(t, ok)
}

func TestDayFloor(t *testing.T) {
	in := time.Date(2025, 6, 1, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DayFloor(in))

	// 非 UTC 输入先换算到 UTC 再取零点
	jakarta := time.FixedZone("WIB", 7*3600)
	in = time.Date(2025, 6, 2, 3, 0, 0, 0, jakarta)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DayFloor(in))
}
