package handlers

import (
	"net/http"
	"sort"

	"greenshelf/internal/store"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	store *store.Store
}

func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{store: s}
}

// List 日历视图：按日期升序
func (h *EventHandler) List(c *gin.Context) {
	events := h.store.Events.All()
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	c.JSON(http.StatusOK, gin.H{"events": events})
}
