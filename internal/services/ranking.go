package services

import (
	"sort"
	"sync"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
	"greenshelf/internal/utils"
)

const leaderboardSize = 10

// RankingService 从当前商品数据派生排行榜。
// 脏标记 + 读时重算：商品每次变更只置位，真正排序推迟到有人要看榜单，
// 避免每次投票都付一次 O(n log n)。
type RankingService struct {
	mu    sync.Mutex
	store *store.Store
	dirty bool
	top   []models.RankedProduct
}

func NewRankingService(s *store.Store) *RankingService {
	return &RankingService{store: s, dirty: true}
}

// MarkDirty 商品集合发生任何变更后调用
func (s *RankingService) MarkDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// Top 返回前 10 排行。结果只依赖当前商品数据，重复计算结果一致。
func (s *RankingService) Top() []models.RankedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		s.top = s.compute()
		s.dirty = false
	}
	out := make([]models.RankedProduct, len(s.top))
	copy(out, s.top)
	return out
}

// Rank 对单个商品计算派生字段（详情接口用）
func (s *RankingService) Rank(p *models.Product) models.RankedProduct {
	return rankProduct(p)
}

func (s *RankingService) compute() []models.RankedProduct {
	products := s.store.Products.All()
	ranked := make([]models.RankedProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, rankProduct(p))
	}

	// 稳定排序：分数相同保持集合原序，结果才是确定的
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if len(ranked) > leaderboardSize {
		ranked = ranked[:leaderboardSize]
	}
	return ranked
}

func rankProduct(p *models.Product) models.RankedProduct {
	ratings := make([]int, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		ratings = append(ratings, r.Rating)
	}
	avg := utils.AverageRating(ratings)
	return models.RankedProduct{
		Product:       *p,
		AverageRating: avg,
		Score:         utils.CalculateScore(p.Upvotes, p.Downvotes, avg),
	}
}
