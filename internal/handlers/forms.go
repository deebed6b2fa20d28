package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FormHandler 食品捐赠/领取申请表。
// 没有后端受理流程，提交内容校验后记录日志。
type FormHandler struct{}

func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

type foodFormRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Details string `json:"details"`
}

func (f *foodFormRequest) validate() string {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return "name is required"
	case strings.TrimSpace(f.Contact) == "":
		return "contact is required"
	case strings.TrimSpace(f.Details) == "":
		return "details is required"
	}
	return ""
}

func (h *FormHandler) Donate(c *gin.Context) {
	h.submit(c, "donate")
}

func (h *FormHandler) GetFood(c *gin.Context) {
	h.submit(c, "get-food")
}

func (h *FormHandler) submit(c *gin.Context, kind string) {
	var req foodFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	log.Printf("%s form submitted: name=%s contact=%s", kind, req.Name, req.Contact)
	c.JSON(http.StatusOK, gin.H{"message": "Thank you! Your request has been noted."})
}
