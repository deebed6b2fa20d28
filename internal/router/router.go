package router

import (
	"greenshelf/internal/handlers"
	"greenshelf/internal/middleware"
	"greenshelf/internal/services"
	"greenshelf/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 装配服务与路由：每个领域动作对应一个 JSON 接口
func RegisterRoutes(r *gin.Engine, s *store.Store) {
	// Services
	rankingService := services.NewRankingService(s)
	interactionService := services.NewInteractionService(s, rankingService)
	reviewService := services.NewReviewService(s, rankingService)
	discussionService := services.NewDiscussionService(s)
	adminService := services.NewAdminService(s, rankingService)

	// Handlers
	productHandler := handlers.NewProductHandler(s, interactionService, reviewService, rankingService)
	articleHandler := handlers.NewArticleHandler(s, interactionService)
	discussionHandler := handlers.NewDiscussionHandler(discussionService)
	eventHandler := handlers.NewEventHandler(s)
	noticeHandler := handlers.NewNoticeHandler(s)
	userHandler := handlers.NewUserHandler(s)
	adminHandler := handlers.NewAdminHandler(adminService)
	formHandler := handlers.NewFormHandler()

	// 浏览类
	r.GET("/products", productHandler.List)           // 全部/按分类
	r.GET("/products/top", productHandler.Top)        // 排行榜前 10
	r.GET("/products/:id", productHandler.Detail)     // 商品详情
	r.GET("/articles", articleHandler.List)           // 全部文章
	r.GET("/articles/featured", articleHandler.Featured)
	r.GET("/articles/:id", articleHandler.Detail)
	r.GET("/events", eventHandler.List)               // 活动日历
	r.GET("/notices", noticeHandler.List)
	r.GET("/notices/current", noticeHandler.Current)  // 轮换公告
	r.GET("/topics", discussionHandler.ListTopics)
	r.GET("/topics/:id", discussionHandler.Topic)     // 打开即计浏览

	// 会话
	r.GET("/users", userHandler.List)
	r.GET("/session/user", userHandler.Current)
	r.POST("/session/user", userHandler.Switch)
	r.GET("/favorites", userHandler.Favorites)

	// 互动（都以当前用户身份执行）
	r.POST("/products/:id/vote", productHandler.Vote)
	r.POST("/products/:id/favorite", productHandler.ToggleFavorite)
	r.POST("/articles/:id/favorite", articleHandler.ToggleFavorite)
	r.POST("/products/:id/reviews", productHandler.AddReview)
	r.PUT("/products/:id/reviews/:rid", productHandler.EditReview)
	r.DELETE("/products/:id/reviews/:rid", productHandler.DeleteReview)
	r.POST("/topics", discussionHandler.CreateTopic)
	r.POST("/topics/:id/posts", discussionHandler.AddPost)
	r.DELETE("/topics/:id/posts/:pid", discussionHandler.DeletePost)

	// 捐赠/领取表单
	r.POST("/forms/donate", formHandler.Donate)
	r.POST("/forms/get-food", formHandler.GetFood)

	// 管理后台
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/products", adminHandler.AddProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.PUT("/products/:id/status", adminHandler.UpdateProductStatus)
		admin.POST("/products/status", adminHandler.BulkUpdateProductStatus)
		admin.POST("/articles", adminHandler.AddArticle)
		admin.DELETE("/articles/:id", adminHandler.DeleteArticle)
		admin.POST("/events", adminHandler.AddEvent)
		admin.DELETE("/events/:id", adminHandler.DeleteEvent)
		admin.POST("/notices", adminHandler.AddNotice)
		admin.PUT("/notices/:id", adminHandler.UpdateNotice)
		admin.DELETE("/notices/:id", adminHandler.DeleteNotice)
	}
}
