package store

import (
	"encoding/json"
	"log"

	"greenshelf/internal/models"
)

// Store 实体仓库：七个集合的唯一归属方。
// 每次成功变更后整集合写回 KV，启动时从 KV 恢复，坏数据回退种子。
type Store struct {
	kv KV

	Products *Collection[*models.Product]
	Articles *Collection[*models.Article]
	Users    *Collection[*models.User]
	Events   *Collection[*models.Event]
	Topics   *Collection[*models.DiscussionTopic]
	Posts    *Collection[*models.DiscussionPost]
	Notices  *Collection[*models.HeaderNotice]
}

func New(kv KV) *Store {
	s := &Store{
		kv:       kv,
		Products: NewCollection(func(p *models.Product) string { return p.ID }),
		Articles: NewCollection(func(a *models.Article) string { return a.ID }),
		Users:    NewCollection(func(u *models.User) string { return u.ID }),
		Events:   NewCollection(func(e *models.Event) string { return e.ID }),
		Topics:   NewCollection(func(t *models.DiscussionTopic) string { return t.ID }),
		Posts:    NewCollection(func(p *models.DiscussionPost) string { return p.ID }),
		Notices:  NewCollection(func(n *models.HeaderNotice) string { return n.ID }),
	}
	s.Load()
	return s
}

// Load 从 KV 恢复各集合；键缺失或数据无法解析时回退到种子数据
func (s *Store) Load() {
	s.Products.Reset(loadOrSeed(s.kv, KeyProducts, SeedProducts()))
	s.Articles.Reset(loadOrSeed(s.kv, KeyArticles, SeedArticles()))
	s.Users.Reset(loadOrSeed(s.kv, KeyUsers, SeedUsers()))
	s.Events.Reset(loadOrSeed(s.kv, KeyEvents, SeedEvents()))
	s.Topics.Reset(loadOrSeed(s.kv, KeyTopics, SeedTopics()))
	s.Posts.Reset(loadOrSeed(s.kv, KeyPosts, SeedPosts()))
	s.Notices.Reset(loadOrSeed(s.kv, KeyNotices, SeedNotices()))
}

// loadOrSeed 读取并反序列化一个集合，任何失败都降级为种子数据
func loadOrSeed[T any](kv KV, key string, seed []T) []T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Printf("持久化读取失败 key=%s: %v，回退种子数据", key, err)
		return seed
	}
	if !ok {
		return seed
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("持久化数据损坏 key=%s: %v，回退种子数据", key, err)
		return seed
	}
	return items
}

// save 整集合序列化写回，写失败只告警（best-effort 持久化）
func save[T any](kv KV, key string, items []T) {
	raw, err := json.Marshal(items)
	if err != nil {
		log.Printf("持久化序列化失败 key=%s: %v", key, err)
		return
	}
	if err := kv.Set(key, string(raw)); err != nil {
		log.Printf("持久化写入失败 key=%s: %v，本次写入丢弃", key, err)
	}
}

func (s *Store) SaveProducts() { save(s.kv, KeyProducts, s.Products.All()) }
func (s *Store) SaveArticles() { save(s.kv, KeyArticles, s.Articles.All()) }
func (s *Store) SaveUsers()    { save(s.kv, KeyUsers, s.Users.All()) }
func (s *Store) SaveEvents()   { save(s.kv, KeyEvents, s.Events.All()) }
func (s *Store) SaveTopics()   { save(s.kv, KeyTopics, s.Topics.All()) }
func (s *Store) SavePosts()    { save(s.kv, KeyPosts, s.Posts.All()) }
func (s *Store) SaveNotices()  { save(s.kv, KeyNotices, s.Notices.All()) }

// LastUserID 最近一次活跃的用户 id（会话恢复用），没有则为空串
func (s *Store) LastUserID() string {
	v, ok, err := s.kv.Get(KeyLastUser)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (s *Store) SetLastUserID(id string) {
	if err := s.kv.Set(KeyLastUser, id); err != nil {
		log.Printf("记录最近用户失败: %v", err)
	}
}
