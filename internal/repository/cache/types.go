package cache

import "time"

// DataWithLogicalExpire 带逻辑过期的缓存封装, key 本身不设物理 TTL,
// 过期后旧值继续可读, 由读到过期值的一方触发重建
type DataWithLogicalExpire struct {
	Data      any       `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // 逻辑过期时间
	CreatedAt time.Time `json:"created_at"` // 写入时间, 用于排查问题
}

// IsLogicalExpired 是否已逻辑过期
func (d *DataWithLogicalExpire) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

// NewDataWithLogicalExpire 按给定 ttl 封装一份缓存值
func NewDataWithLogicalExpire(data any, ttl time.Duration) *DataWithLogicalExpire {
	now := time.Now()
	return &DataWithLogicalExpire{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
