package models

// ThumbsState 用户对单个商品的投票三态
type ThumbsState string

const (
	ThumbsNone ThumbsState = "none"
	ThumbsUp   ThumbsState = "up"
	ThumbsDown ThumbsState = "down"
)

// ProductInteraction 用户×商品的互动记录
type ProductInteraction struct {
	ThumbsState ThumbsState `json:"thumbs_state"`
	IsFavorited bool        `json:"is_favorited"`
}

// ArticleInteraction 用户×文章的互动记录（文章只有收藏，没有投票）
type ArticleInteraction struct {
	IsFavorited bool `json:"is_favorited"`
}

// User 用户。本系统没有注册/登录，用户来自种子数据，
// "当前用户" 是一个受信任的会话选择。
type User struct {
	ID                  string                         `json:"id"`
	Name                string                         `json:"name"`
	IsAdmin             bool                           `json:"is_admin"`
	ProductInteractions map[string]*ProductInteraction `json:"product_interactions"` // productID -> 互动
	ArticleInteractions map[string]*ArticleInteraction `json:"article_interactions"` // articleID -> 互动
}

// TouchProduct 返回用户对指定商品的互动记录，
// 首次引用时创建默认记录（thumbs_state=none）。
func (u *User) TouchProduct(productID string) *ProductInteraction {
	if u.ProductInteractions == nil {
		u.ProductInteractions = make(map[string]*ProductInteraction)
	}
	it, ok := u.ProductInteractions[productID]
	if !ok {
		it = &ProductInteraction{ThumbsState: ThumbsNone}
		u.ProductInteractions[productID] = it
	}
	return it
}

// TouchArticle 同上，文章版
func (u *User) TouchArticle(articleID string) *ArticleInteraction {
	if u.ArticleInteractions == nil {
		u.ArticleInteractions = make(map[string]*ArticleInteraction)
	}
	it, ok := u.ArticleInteractions[articleID]
	if !ok {
		it = &ArticleInteraction{}
		u.ArticleInteractions[articleID] = it
	}
	return it
}
