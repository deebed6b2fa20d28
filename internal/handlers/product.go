package handlers

import (
	"net/http"

	"greenshelf/internal/models"
	"greenshelf/internal/services"
	"greenshelf/internal/store"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store        *store.Store
	interactions *services.InteractionService
	reviews      *services.ReviewService
	ranking      *services.RankingService
}

func NewProductHandler(s *store.Store, i *services.InteractionService, rv *services.ReviewService, rk *services.RankingService) *ProductHandler {
	return &ProductHandler{store: s, interactions: i, reviews: rv, ranking: rk}
}

// List 全部商品，?category= 过滤单个分类
func (h *ProductHandler) List(c *gin.Context) {
	category := models.ProductCategory(c.Query("category"))
	if category != "" && !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	products := h.store.Products.All()
	if category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Detail 商品详情：带派生分数和当前用户的互动状态
func (h *ProductHandler) Detail(c *gin.Context) {
	p, ok := h.store.Products.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	resp := gin.H{"product": h.ranking.Rank(p)}
	if user, ok := CurrentUser(c); ok {
		if it, ok := user.ProductInteractions[p.ID]; ok {
			resp["interaction"] = it
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Top 排行榜前 10
func (h *ProductHandler) Top(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.ranking.Top()})
}

type voteRequest struct {
	Direction models.ThumbsState `json:"direction" binding:"required"`
}

// Vote 三态投票；返回更新后的计数和用户投票状态
func (h *ProductHandler) Vote(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no current user"})
		return
	}
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction is required"})
		return
	}

	product, err := h.interactions.Vote(c.Param("id"), user.ID, req.Direction)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"upvotes":      product.Upvotes,
		"downvotes":    product.Downvotes,
		"thumbs_state": user.ProductInteractions[product.ID].ThumbsState,
	})
}

// ToggleFavorite 收藏开关
func (h *ProductHandler) ToggleFavorite(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no current user"})
		return
	}
	it, err := h.interactions.ToggleFavoriteProduct(user.ID, c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorited": it.IsFavorited})
}

type reviewRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func (h *ProductHandler) AddReview(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.reviews.Add(c.Param("id"), user, req.Text, req.Rating)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *ProductHandler) EditReview(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.reviews.Edit(c.Param("id"), c.Param("rid"), user, req.Text, req.Rating)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ProductHandler) DeleteReview(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.reviews.Delete(c.Param("id"), c.Param("rid"), user); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
