package main

import (
	"log"
	"os"

	"greenshelf/internal/db"
	"greenshelf/internal/middleware"
	"greenshelf/internal/router"
	"greenshelf/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// 持久化后端：数据库可用则用 KV 表，否则降级为内存（只影响重启恢复）
	var kv store.KV
	if gdb, err := db.Init(); err != nil {
		log.Printf("数据库不可用: %v，本次运行使用内存持久化", err)
		kv = store.NewMemoryKV()
	} else {
		kv = db.NewKV(gdb)
	}

	// 实体仓库：恢复失败的集合回退种子数据
	s := store.New(kv)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("greenshelf_session", cookieStore))

	// 当前用户装载
	r.Use(middleware.LoadUser(s))

	router.RegisterRoutes(r, s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("greenshelf server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
