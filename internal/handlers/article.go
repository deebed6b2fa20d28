package handlers

import (
	"net/http"
	"time"

	"greenshelf/internal/services"
	"greenshelf/internal/store"
	"greenshelf/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	store        *store.Store
	interactions *services.InteractionService
}

func NewArticleHandler(s *store.Store, i *services.InteractionService) *ArticleHandler {
	return &ArticleHandler{store: s, interactions: i}
}

func (h *ArticleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": h.store.Articles.All()})
}

// Featured 侧边栏的推荐位，最多 3 篇
func (h *ArticleHandler) Featured(c *gin.Context) {
	var featured []any
	for _, a := range h.store.Articles.All() {
		if a.IsFeatured {
			featured = append(featured, a)
			if len(featured) == 3 {
				break
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"articles": featured})
}

// Detail 文章详情，正文渲染为净化后的 HTML；渲染结果走 LRU 缓存
func (h *ArticleHandler) Detail(c *gin.Context) {
	a, ok := h.store.Articles.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	cacheKey := "article:" + a.ID
	html, hit := utils.GetRenderCache().Get(cacheKey)
	if !hit {
		html = utils.RenderMarkdown(a.Content)
		utils.GetRenderCache().Set(cacheKey, html, 10*time.Minute)
	}

	resp := gin.H{"article": a, "content_html": html}
	if user, ok := CurrentUser(c); ok {
		if it, ok := user.ArticleInteractions[a.ID]; ok {
			resp["interaction"] = it
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) ToggleFavorite(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no current user"})
		return
	}
	it, err := h.interactions.ToggleFavoriteArticle(user.ID, c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorited": it.IsFavorited})
}
