package util

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrFloat 用于将 float64 转换为 *float64
func PtrFloat(f float64) *float64 {
	return &f
}

// PtrStr 用于将非空字符串转换为 *string，空串返回 nil
func PtrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
