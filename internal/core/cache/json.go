package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetOrLoadJSON 按 key 读缓存，未命中时回源并写回 JSON。
// 回源返回 nil 指针会编码成 "null" 并照常缓存，等于天然的负缓存：
// 查不到的 id 在 TTL 内不会反复打到库上。
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
