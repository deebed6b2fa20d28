package models

import (
	"time"
)

// Event 社区活动，纯内容实体，按日期升序展示
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"` // 文字时间段，如 "10:00 AM - 2:00 PM"
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
}
