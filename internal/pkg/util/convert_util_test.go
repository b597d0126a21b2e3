package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	require.NotNil(t, ToInt("42"))
	assert.Equal(t, 42, *ToInt("42"))

	// 浮点字符串截断为整数
	require.NotNil(t, ToInt("42.7"))
	assert.Equal(t, 42, *ToInt("42.7"))

	// JSON 解码出的数字是 float64
	require.NotNil(t, ToInt(float64(17)))
	assert.Equal(t, 17, *ToInt(float64(17)))

	assert.Nil(t, ToInt(nil))
	assert.Nil(t, ToInt("abc"))
	assert.Nil(t, ToInt(map[string]any{}))
	assert.Nil(t, ToInt(true))
}

func TestToIntOr(t *testing.T) {
	assert.Equal(t, 0, ToIntOr(nil, 0))
	assert.Equal(t, 7, ToIntOr("abc", 7))
	assert.Equal(t, 42, ToIntOr("42", 0))
}

func TestToFloat(t *testing.T) {
	require.NotNil(t, ToFloat("3.14"))
	assert.InDelta(t, 3.14, *ToFloat("3.14"), 1e-9)
	require.NotNil(t, ToFloat(float64(2)))
	assert.Nil(t, ToFloat(nil))
	assert.Nil(t, ToFloat("x"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "", ToString(nil))
	// 整数值的 float64 不应带小数点
	assert.Equal(t, "7234567890", ToString(float64(7234567890)))
	assert.Equal(t, "1.5", ToString(1.5))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 20.0, Round2(20.0))
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
}

func TestIntValue(t *testing.T) {
	assert.Equal(t, 0, IntValue(nil))
	assert.Equal(t, 5, IntValue(PtrInt(5)))
}
