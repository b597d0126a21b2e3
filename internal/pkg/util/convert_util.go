package util

import (
	"math"
	"strconv"
	"strings"
)

// ToInt 将任意 JSON 解码值转换为 int，兼容数字、浮点与数字字符串（如 "42.7"），失败返回 nil
func ToInt(v any) *int {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return &x
	case int64:
		i := int(x)
		return &i
	case float64:
		i := int(x)
		return &i
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			return &i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			i := int(f)
			return &i
		}
		return nil
	default:
		return nil
	}
}

// ToIntOr 同 ToInt，失败时降级为给定默认值
func ToIntOr(v any, def int) int {
	if p := ToInt(v); p != nil {
		return *p
	}
	return def
}

// ToFloat 将任意 JSON 解码值转换为 float64，失败返回 nil
func ToFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	case int64:
		f := float64(x)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

// ToString 将任意 JSON 解码值转换为字符串形式的标识，空值返回 ""
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

// Round2 四舍五入保留两位小数
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// IntValue 解引用 *int，nil 时返回 0
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
