package handlers

import (
	"net/http"

	"greenshelf/internal/models"
	"greenshelf/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(a *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: a}
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	user, _ := CurrentUser(c)
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.admin.AddProduct(user, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.admin.DeleteProduct(user, c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AddArticle(c *gin.Context) {
	user, _ := CurrentUser(c)
	var in services.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	a, err := h.admin.AddArticle(user, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": a})
}

func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.admin.DeleteArticle(user, c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AddEvent(c *gin.Context) {
	user, _ := CurrentUser(c)
	var in services.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	e, err := h.admin.AddEvent(user, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.admin.DeleteEvent(user, c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AddNotice(c *gin.Context) {
	user, _ := CurrentUser(c)
	var in services.NoticeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	n, err := h.admin.AddNotice(user, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notice": n})
}

func (h *AdminHandler) UpdateNotice(c *gin.Context) {
	user, _ := CurrentUser(c)
	var in services.NoticeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	n, err := h.admin.UpdateNotice(user, c.Param("id"), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": n})
}

func (h *AdminHandler) DeleteNotice(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.admin.DeleteNotice(user, c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type statusRequest struct {
	Status  models.ProductStatus `json:"status"`
	Present bool                 `json:"present"`
}

func (h *AdminHandler) UpdateProductStatus(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.admin.UpdateProductStatus(user, c.Param("id"), req.Status, req.Present)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

type bulkStatusRequest struct {
	ProductIDs []string             `json:"product_ids"`
	Status     models.ProductStatus `json:"status"`
	Action     string               `json:"action"` // add | remove
}

func (h *AdminHandler) BulkUpdateProductStatus(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	touched, err := h.admin.BulkUpdateProductStatus(user, req.ProductIDs, req.Status, req.Action)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": touched})
}
