package handlers

import (
	"net/http"
	"time"

	"greenshelf/internal/store"

	"github.com/gin-gonic/gin"
)

// 页头公告每 7 秒轮换一条
const noticeRotationSeconds = 7

type NoticeHandler struct {
	store *store.Store
}

func NewNoticeHandler(s *store.Store) *NoticeHandler {
	return &NoticeHandler{store: s}
}

func (h *NoticeHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notices": h.store.Notices.All()})
}

// Current 当前轮换槽位的公告。只算展示下标，不碰领域数据。
func (h *NoticeHandler) Current(c *gin.Context) {
	notices := h.store.Notices.All()
	if len(notices) == 0 {
		c.JSON(http.StatusOK, gin.H{"notice": nil})
		return
	}
	idx := int(time.Now().Unix()/noticeRotationSeconds) % len(notices)
	c.JSON(http.StatusOK, gin.H{"notice": notices[idx], "index": idx})
}
