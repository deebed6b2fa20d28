package db

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Entry 键值持久化表：每个集合一行，值为整集合的 JSON
type Entry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Init 连接数据库并迁移 KV 表。
// 与整体"尽力而为持久化"策略一致，这里返回错误交由调用方降级，
// 而不是直接退出进程。
func Init() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=greenshelf port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	log.Println("Database connection established")
	return gdb, nil
}

// KV 基于 gorm 的持久化协作方实现
type KV struct {
	db *gorm.DB
}

func NewKV(gdb *gorm.DB) *KV {
	return &KV{db: gdb}
}

func (k *KV) Get(key string) (string, bool, error) {
	var e Entry
	err := k.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (k *KV) Set(key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return k.db.Save(&e).Error
}

func (k *KV) Delete(key string) error {
	return k.db.Delete(&Entry{}, "key = ?", key).Error
}
