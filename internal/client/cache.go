package client

import "sync"

// Cache 是按集合路径为键的查询缓存
// 写操作成功后由客户端显式失效对应集合，而非全局清空
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewCache 构造空缓存
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get 返回键对应的缓存值
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set 写入缓存值
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate 删除键对应的缓存条目
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
