package middleware

import (
	"net/http"

	"greenshelf/internal/models"
	"greenshelf/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser 解析"当前用户"：会话里的 user_id 优先，
// 其次是持久化的最近活跃用户，最后落到种子里的第一个用户。
// 没有登录概念，用户选择是受信任的。
func LoadUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, _ := session.Get("user_id").(string)
		if userID == "" {
			userID = s.LastUserID()
		}

		if user, ok := s.Users.Get(userID); ok {
			c.Set(CheckUserKey, user)
		} else if all := s.Users.All(); len(all) > 0 {
			c.Set(CheckUserKey, all[0])
		}
		c.Next()
	}
}

// AdminRequired 管理接口门禁；服务层还会再复核一次
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CheckUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no current user"})
			return
		}
		if user, ok := v.(*models.User); !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privilege required"})
			return
		}
		c.Next()
	}
}
