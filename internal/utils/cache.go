package utils

import (
	"html/template"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type renderEntry struct {
	HTML      template.HTML
	ExpiresAt time.Time
}

// RenderCache 渲染结果缓存：文章详情的 Markdown 渲染开销不小，
// 内容只在管理操作时变化，适合短 TTL 缓存。
type RenderCache struct {
	lruCache *lru.Cache[string, renderEntry]
}

var renderCache *RenderCache

// GetRenderCache 获取单例缓存实例
func GetRenderCache() *RenderCache {
	if renderCache == nil {
		l, err := lru.New[string, renderEntry](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		renderCache = &RenderCache{lruCache: l}
	}
	return renderCache
}

func (c *RenderCache) Set(key string, html template.HTML, ttl time.Duration) {
	c.lruCache.Add(key, renderEntry{
		HTML:      html,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get 命中且未过期时返回缓存的 HTML
func (c *RenderCache) Get(key string) (template.HTML, bool) {
	e, ok := c.lruCache.Get(key)
	if !ok {
		return "", false
	}
	if time.Now().After(e.ExpiresAt) {
		c.lruCache.Remove(key)
		return "", false
	}
	return e.HTML, true
}

func (c *RenderCache) Delete(key string) {
	c.lruCache.Remove(key)
}
