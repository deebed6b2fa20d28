package services

import (
	"greenshelf/internal/models"
	"greenshelf/internal/store"
)

// InteractionService 维护用户×条目的互动状态（收藏、投票），
// 并与商品上的聚合计数器锁步更新。
type InteractionService struct {
	store   *store.Store
	ranking *RankingService
}

func NewInteractionService(s *store.Store, r *RankingService) *InteractionService {
	return &InteractionService{store: s, ranking: r}
}

// ToggleFavoriteProduct 翻转收藏标记，用户或商品不存在时返回 NotFound。
func (s *InteractionService) ToggleFavoriteProduct(userID, productID string) (*models.ProductInteraction, error) {
	user, ok := s.store.Users.Get(userID)
	if !ok {
		return nil, notFound("user", userID)
	}
	if _, ok := s.store.Products.Get(productID); !ok {
		return nil, notFound("product", productID)
	}

	it := user.TouchProduct(productID)
	it.IsFavorited = !it.IsFavorited
	s.store.SaveUsers()
	return it, nil
}

func (s *InteractionService) ToggleFavoriteArticle(userID, articleID string) (*models.ArticleInteraction, error) {
	user, ok := s.store.Users.Get(userID)
	if !ok {
		return nil, notFound("user", userID)
	}
	if _, ok := s.store.Articles.Get(articleID); !ok {
		return nil, notFound("article", articleID)
	}

	it := user.TouchArticle(articleID)
	it.IsFavorited = !it.IsFavorited
	s.store.SaveUsers()
	return it, nil
}

// Vote 三态投票开关。
// 状态机：再按同方向取消该票；换方向时旧方向计数回退、新方向 +1。
// 商品聚合计数与用户 thumbs_state 必须在同一次调用里一起变，
// 二者的一致性全靠这里，不允许任何一侧单独更新。
func (s *InteractionService) Vote(productID, userID string, direction models.ThumbsState) (*models.Product, error) {
	if direction != models.ThumbsUp && direction != models.ThumbsDown {
		return nil, invalid("direction", "must be up or down")
	}

	user, ok := s.store.Users.Get(userID)
	if !ok {
		return nil, notFound("user", userID)
	}
	product, ok := s.store.Products.Get(productID)
	if !ok {
		return nil, notFound("product", productID)
	}

	it := user.TouchProduct(productID)
	prev := it.ThumbsState

	switch {
	case prev == direction:
		// 同方向再按一次 = 撤票
		it.ThumbsState = models.ThumbsNone
		if direction == models.ThumbsUp {
			product.Upvotes--
		} else {
			product.Downvotes--
		}
	default:
		it.ThumbsState = direction
		if direction == models.ThumbsUp {
			product.Upvotes++
			if prev == models.ThumbsDown {
				product.Downvotes--
			}
		} else {
			product.Downvotes++
			if prev == models.ThumbsUp {
				product.Upvotes--
			}
		}
	}

	// 防御性下限：历史脏数据可能把计数减到负
	if product.Upvotes < 0 {
		product.Upvotes = 0
	}
	if product.Downvotes < 0 {
		product.Downvotes = 0
	}

	s.store.SaveProducts()
	s.store.SaveUsers()
	s.ranking.MarkDirty()
	return product, nil
}
