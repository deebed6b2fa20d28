package store

// 各集合在持久化层的键名，外加一个"最近活跃用户"键
const (
	KeyProducts = "products"
	KeyArticles = "articles"
	KeyUsers    = "users"
	KeyEvents   = "events"
	KeyTopics   = "discussion_topics"
	KeyPosts    = "discussion_posts"
	KeyNotices  = "header_notices"
	KeyLastUser = "last_active_user"
)

// KV 持久化协作方：按键存取字符串，值为各集合的 JSON 序列化结果。
// 读写失败只降级，不致命（见 PersistenceWarning 语义）。
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV 内存实现：测试用，也是数据库不可用时的降级后端
type MemoryKV struct {
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}
