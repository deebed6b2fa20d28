package store

import (
	"fmt"
	"sort"
)

// Collection 按插入序保存实体，同时维护 id 索引保证 O(1) 查找。
// 同一集合内不允许出现重复 id。
type Collection[T any] struct {
	items []T
	index map[string]int
	idOf  func(T) string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{
		index: make(map[string]int),
		idOf:  idOf,
	}
}

// All 返回插入序的浅拷贝切片
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	if i, ok := c.index[id]; ok {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Insert 追加到尾部，id 重复时报错
func (c *Collection[T]) Insert(item T) error {
	id := c.idOf(item)
	if _, dup := c.index[id]; dup {
		return fmt.Errorf("collection: duplicate id %q", id)
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// InsertFront 插入到头部（新商品/文章/公告展示在最前）
func (c *Collection[T]) InsertFront(item T) error {
	id := c.idOf(item)
	if _, dup := c.index[id]; dup {
		return fmt.Errorf("collection: duplicate id %q", id)
	}
	c.items = append([]T{item}, c.items...)
	c.reindex()
	return nil
}

// Replace 按 id 原位替换，返回是否命中
func (c *Collection[T]) Replace(item T) bool {
	i, ok := c.index[c.idOf(item)]
	if !ok {
		return false
	}
	c.items[i] = item
	return true
}

// Remove 按 id 删除，返回是否命中
func (c *Collection[T]) Remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindex()
	return true
}

// Reset 用给定切片重建集合（加载持久化数据/种子时用），
// 重复 id 只保留首个出现的条目。
func (c *Collection[T]) Reset(items []T) {
	c.items = c.items[:0]
	c.index = make(map[string]int)
	for _, item := range items {
		id := c.idOf(item)
		if _, dup := c.index[id]; dup {
			continue
		}
		c.index[id] = len(c.items)
		c.items = append(c.items, item)
	}
}

// SortStable 稳定排序（活动按日期升序等），排序后重建索引
func (c *Collection[T]) SortStable(less func(a, b T) bool) {
	sort.SliceStable(c.items, func(i, j int) bool { return less(c.items[i], c.items[j]) })
	c.reindex()
}

func (c *Collection[T]) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, item := range c.items {
		c.index[c.idOf(item)] = i
	}
}
