package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound 结构性缺失（按 id/username 找不到实体），边界层翻译成 404。
// 字段级校验失败不走这里，它们作为普通值返回。
var ErrNotFound = errors.New("not found")

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
