package handlers

import (
	"net/http"

	"greenshelf/internal/services"
	"greenshelf/internal/utils"

	"github.com/gin-gonic/gin"
)

type DiscussionHandler struct {
	discussions *services.DiscussionService
}

func NewDiscussionHandler(d *services.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussions: d}
}

func (h *DiscussionHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.discussions.ListTopics()})
}

// Topic 打开话题：计一次浏览，返回话题和按时间正序的回帖。
// 回帖正文是 Markdown 源文，这里一并渲染成净化后的 HTML。
func (h *DiscussionHandler) Topic(c *gin.Context) {
	topicID := c.Param("id")
	topic, err := h.discussions.RecordView(topicID)
	if err != nil {
		Fail(c, err)
		return
	}

	posts := h.discussions.PostsForTopic(topicID)
	rendered := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		rendered = append(rendered, gin.H{"post": p, "content_html": utils.RenderMarkdown(p.Content)})
	}
	c.JSON(http.StatusOK, gin.H{
		"topic": topic,
		"posts": rendered,
	})
}

type createTopicRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *DiscussionHandler) CreateTopic(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topic, err := h.discussions.CreateTopic(req.Title, req.Content, user)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}

type addPostRequest struct {
	Content string `json:"content"`
}

func (h *DiscussionHandler) AddPost(c *gin.Context) {
	user, _ := CurrentUser(c)
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.discussions.AddPost(c.Param("id"), req.Content, user)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *DiscussionHandler) DeletePost(c *gin.Context) {
	user, _ := CurrentUser(c)
	if err := h.discussions.DeletePost(c.Param("id"), c.Param("pid"), user); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
