package services

import (
	"strings"
	"time"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
	"greenshelf/internal/utils"
)

// ReviewService 商品评价的增删改，带作者/管理员鉴权
type ReviewService struct {
	store   *store.Store
	ranking *RankingService
}

func NewReviewService(s *store.Store, r *RankingService) *ReviewService {
	return &ReviewService{store: s, ranking: r}
}

// Add 追加一条评价。
// 同一用户可以多次评价同一商品（取舍记录见 DESIGN.md）。
func (s *ReviewService) Add(productID string, user *models.User, text string, rating int) (*models.Review, error) {
	if user == nil {
		return nil, notFound("user", "")
	}
	// 先过滤标签再校验：纯标签输入过滤后就是空文本
	text = utils.SanitizeText(text)
	if strings.TrimSpace(text) == "" {
		return nil, invalid("text", "must not be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, invalid("rating", "must be an integer between 1 and 5")
	}
	product, ok := s.store.Products.Get(productID)
	if !ok {
		return nil, notFound("product", productID)
	}

	review := models.Review{
		ID:       "review-" + utils.RandStringBytesMaskImpr(12),
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   rating,
		Text:     text,
		Date:     time.Now().Format("2006-01-02"),
	}
	product.Reviews = append(product.Reviews, review)

	s.store.SaveProducts()
	s.ranking.MarkDirty()
	return &review, nil
}

// Edit 只允许作者本人修改；日期刷新为当天
func (s *ReviewService) Edit(productID, reviewID string, user *models.User, text string, rating int) (*models.Review, error) {
	if user == nil {
		return nil, notFound("user", "")
	}
	text = utils.SanitizeText(text)
	if strings.TrimSpace(text) == "" {
		return nil, invalid("text", "must not be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, invalid("rating", "must be an integer between 1 and 5")
	}
	product, ok := s.store.Products.Get(productID)
	if !ok {
		return nil, notFound("product", productID)
	}

	for i := range product.Reviews {
		r := &product.Reviews[i]
		if r.ID != reviewID {
			continue
		}
		// UI 层应该已经拦过，这里仍然复核作者身份
		if r.UserID != user.ID {
			return nil, &AuthorizationError{Reason: "only the author can edit a review"}
		}
		r.Text = text
		r.Rating = rating
		r.Date = time.Now().Format("2006-01-02")
		s.store.SaveProducts()
		s.ranking.MarkDirty()
		return r, nil
	}
	return nil, notFound("review", reviewID)
}

// Delete 作者或管理员可删；评价不影响投票计数，只影响排名分
func (s *ReviewService) Delete(productID, reviewID string, user *models.User) error {
	if user == nil {
		return notFound("user", "")
	}
	product, ok := s.store.Products.Get(productID)
	if !ok {
		return notFound("product", productID)
	}

	for i := range product.Reviews {
		r := product.Reviews[i]
		if r.ID != reviewID {
			continue
		}
		if !user.IsAdmin && r.UserID != user.ID {
			return &AuthorizationError{Reason: "only the author or an admin can delete a review"}
		}
		product.Reviews = append(product.Reviews[:i], product.Reviews[i+1:]...)
		s.store.SaveProducts()
		s.ranking.MarkDirty()
		return nil
	}
	return notFound("review", reviewID)
}
