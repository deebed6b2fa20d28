package models

import (
	"time"
)

// DiscussionTopic 讨论区话题（帖子串的头部）
// 不变量：ReplyCount 等于引用该话题的存活 DiscussionPost 数量，增量维护
type DiscussionTopic struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	CreatedByUserID   string     `json:"created_by_user_id"`
	CreatedByUserName string     `json:"created_by_user_name"`
	CreatedAt         time.Time  `json:"created_at"`
	LastReplyAt       *time.Time `json:"last_reply_at,omitempty"`
	ReplyCount        int        `json:"reply_count"` // 非负
	ViewCount         int        `json:"view_count"`  // 单调不减
}

// DiscussionPost 话题下的回帖，按 id 引用所属话题
type DiscussionPost struct {
	ID       string    `json:"id"`
	TopicID  string    `json:"topic_id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
}
