package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"greenshelf/internal/models"
)

func TestCollectionOrderAndLookup(t *testing.T) {
	c := NewCollection(func(p *models.Product) string { return p.ID })
	for _, id := range []string{"a", "b", "c"} {
		if err := c.Insert(&models.Product{ID: id}); err != nil {
			t.Fatalf("Insert(%s) failed: %v", id, err)
		}
	}

	// 插入序保持
	all := c.All()
	if len(all) != 3 || all[0].ID != "a" || all[2].ID != "c" {
		t.Errorf("unexpected order: %v", all)
	}

	// 重复 id 拒绝
	if err := c.Insert(&models.Product{ID: "b"}); err == nil {
		t.Error("expected duplicate id error")
	}

	if err := c.InsertFront(&models.Product{ID: "z"}); err != nil {
		t.Fatalf("InsertFront failed: %v", err)
	}
	if got := c.All()[0].ID; got != "z" {
		t.Errorf("InsertFront: expected z first, got %s", got)
	}
	if p, ok := c.Get("z"); !ok || p.ID != "z" {
		t.Error("Get after InsertFront failed")
	}

	if !c.Remove("b") {
		t.Error("Remove(b) should hit")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b still present after Remove")
	}
	if c.Remove("b") {
		t.Error("second Remove(b) should miss")
	}
}

func TestCollectionResetSkipsDuplicates(t *testing.T) {
	c := NewCollection(func(p *models.Product) string { return p.ID })
	c.Reset([]*models.Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"}, // 重复 id，只保留首个
		{ID: "b"},
	})
	if c.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", c.Len())
	}
	p, _ := c.Get("a")
	if p.Name != "first" {
		t.Errorf("expected first occurrence kept, got %s", p.Name)
	}
}

// 七个集合各自序列化-反序列化后必须与原数据深度相等
func TestRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv)

	// 触发全部集合落盘
	s.SaveProducts()
	s.SaveArticles()
	s.SaveUsers()
	s.SaveEvents()
	s.SaveTopics()
	s.SavePosts()
	s.SaveNotices()

	before := snapshot(t, s)

	// 用同一个 KV 重建仓库，应恢复出相同内容
	s2 := New(kv)
	after := snapshot(t, s2)

	for key, b := range before {
		if !reflect.DeepEqual(b, after[key]) {
			t.Errorf("round trip mismatch for %s", key)
		}
	}
}

// snapshot 用 JSON 归一化各集合内容（时间精度等以序列化形态为准）
func snapshot(t *testing.T, s *Store) map[string]string {
	t.Helper()
	out := make(map[string]string)
	dump := func(key string, v any) {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", key, err)
		}
		out[key] = string(raw)
	}
	dump(KeyProducts, s.Products.All())
	dump(KeyArticles, s.Articles.All())
	dump(KeyUsers, s.Users.All())
	dump(KeyEvents, s.Events.All())
	dump(KeyTopics, s.Topics.All())
	dump(KeyPosts, s.Posts.All())
	dump(KeyNotices, s.Notices.All())
	return out
}

func TestLoadFallsBackOnMalformedData(t *testing.T) {
	kv := NewMemoryKV()
	// 不是数组的坏数据
	kv.Set(KeyProducts, `{"oops": true}`)
	kv.Set(KeyUsers, `not json at all`)

	s := New(kv)
	if s.Products.Len() != len(SeedProducts()) {
		t.Errorf("products should fall back to seed, got %d", s.Products.Len())
	}
	if s.Users.Len() != len(SeedUsers()) {
		t.Errorf("users should fall back to seed, got %d", s.Users.Len())
	}
}

func TestLoadUsesStoredDataWhenValid(t *testing.T) {
	kv := NewMemoryKV()
	raw, _ := json.Marshal([]*models.Product{{ID: "only", Name: "Only Product"}})
	kv.Set(KeyProducts, string(raw))

	s := New(kv)
	if s.Products.Len() != 1 {
		t.Fatalf("expected 1 stored product, got %d", s.Products.Len())
	}
	if p, ok := s.Products.Get("only"); !ok || p.Name != "Only Product" {
		t.Error("stored product not loaded")
	}
}

func TestLastUserID(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv)
	if got := s.LastUserID(); got != "" {
		t.Errorf("expected empty last user, got %q", got)
	}
	s.SetLastUserID("user2")
	if got := s.LastUserID(); got != "user2" {
		t.Errorf("expected user2, got %q", got)
	}
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection(func(p *models.Product) string { return p.ID })
	c.Reset([]*models.Product{{ID: "a"}, {ID: "b", Name: "old"}, {ID: "c"}})

	if !c.Replace(&models.Product{ID: "b", Name: "new"}) {
		t.Fatal("Replace(b) should hit")
	}
	// 原位替换：位置不变，内容更新
	all := c.All()
	if all[1].ID != "b" || all[1].Name != "new" {
		t.Errorf("unexpected item at position 1: %+v", all[1])
	}
	if p, _ := c.Get("b"); p.Name != "new" {
		t.Error("Get returns stale item after Replace")
	}

	if c.Replace(&models.Product{ID: "ghost"}) {
		t.Error("Replace of unknown id should miss")
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}
