package handlers

import (
	"net/http"

	"greenshelf/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.store.Users.All()})
}

func (h *UserHandler) Current(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type switchUserRequest struct {
	UserID string `json:"user_id"`
}

// Switch 切换当前用户（顶栏下拉框），受信任操作，无口令。
// 写入会话并持久化为最近活跃用户。
func (h *UserHandler) Switch(c *gin.Context) {
	var req switchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	user, ok := h.store.Users.Get(req.UserID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	h.store.SetLastUserID(user.ID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Favorites 当前用户收藏的商品与文章
func (h *UserHandler) Favorites(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no current user"})
		return
	}

	var products []any
	for _, p := range h.store.Products.All() {
		if it, ok := user.ProductInteractions[p.ID]; ok && it.IsFavorited {
			products = append(products, p)
		}
	}
	var articles []any
	for _, a := range h.store.Articles.All() {
		if it, ok := user.ArticleInteractions[a.ID]; ok && it.IsFavorited {
			articles = append(articles, a)
		}
	}
	// 互动表里残留的已删实体 id 在这里自然被跳过
	c.JSON(http.StatusOK, gin.H{"products": products, "articles": articles})
}
