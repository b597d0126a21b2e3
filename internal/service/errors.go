package service

import (
	"errors"
)

var (
	ErrNoCreatorsFound = errors.New("数据目录下未发现任何创作者文件")
)
