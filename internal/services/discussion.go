package services

import (
	"sort"
	"strings"
	"time"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
	"greenshelf/internal/utils"
)

// DiscussionService 讨论区：话题与回帖，负责回帖计数的增量维护
type DiscussionService struct {
	store *store.Store
}

func NewDiscussionService(s *store.Store) *DiscussionService {
	return &DiscussionService{store: s}
}

// ListTopics 最近有动静的话题排前面（无回复时按创建时间）
func (s *DiscussionService) ListTopics() []*models.DiscussionTopic {
	topics := s.store.Topics.All()
	activity := func(t *models.DiscussionTopic) time.Time {
		if t.LastReplyAt != nil {
			return *t.LastReplyAt
		}
		return t.CreatedAt
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return activity(topics[i]).After(activity(topics[j]))
	})
	return topics
}

// PostsForTopic 话题下的回帖，按时间正序
func (s *DiscussionService) PostsForTopic(topicID string) []*models.DiscussionPost {
	var posts []*models.DiscussionPost
	for _, p := range s.store.Posts.All() {
		if p.TopicID == topicID {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.Before(posts[j].Date)
	})
	return posts
}

// CreateTopic 新话题自带首帖：replyCount 从 1 起算，首帖与话题同时间戳
func (s *DiscussionService) CreateTopic(title, firstPostContent string, user *models.User) (*models.DiscussionTopic, error) {
	if user == nil {
		return nil, notFound("user", "")
	}
	// 标题先过滤标签再校验，纯标签标题等同空标题
	title = utils.SanitizeText(title)
	if strings.TrimSpace(title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if strings.TrimSpace(firstPostContent) == "" {
		return nil, invalid("content", "must not be empty")
	}

	now := time.Now()
	topic := &models.DiscussionTopic{
		ID:                utils.NewEntityID(title),
		Title:             title,
		CreatedByUserID:   user.ID,
		CreatedByUserName: user.Name,
		CreatedAt:         now,
		LastReplyAt:       &now,
		ReplyCount:        1,
		ViewCount:         0,
	}
	post := &models.DiscussionPost{
		ID:       "post-" + utils.RandStringBytesMaskImpr(12),
		TopicID:  topic.ID,
		UserID:   user.ID,
		UserName: user.Name,
		Content:  firstPostContent,
		Date:     now,
	}

	if err := s.store.Topics.InsertFront(topic); err != nil {
		return nil, err
	}
	if err := s.store.Posts.InsertFront(post); err != nil {
		// 理论上不可能：post id 是新生成的
		s.store.Topics.Remove(topic.ID)
		return nil, err
	}
	s.store.SaveTopics()
	s.store.SavePosts()
	return topic, nil
}

// AddPost 回帖。话题不存在时返回 NotFound。
func (s *DiscussionService) AddPost(topicID, content string, user *models.User) (*models.DiscussionPost, error) {
	if user == nil {
		return nil, notFound("user", "")
	}
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "must not be empty")
	}
	topic, ok := s.store.Topics.Get(topicID)
	if !ok {
		return nil, notFound("topic", topicID)
	}

	now := time.Now()
	post := &models.DiscussionPost{
		ID:       "post-" + utils.RandStringBytesMaskImpr(12),
		TopicID:  topicID,
		UserID:   user.ID,
		UserName: user.Name,
		Content:  content,
		Date:     now,
	}
	if err := s.store.Posts.InsertFront(post); err != nil {
		return nil, err
	}
	topic.ReplyCount++
	topic.LastReplyAt = &now

	s.store.SavePosts()
	s.store.SaveTopics()
	return post, nil
}

// DeletePost 作者或管理员可删；帖子已不存在时计数保持原样
func (s *DiscussionService) DeletePost(topicID, postID string, user *models.User) error {
	if user == nil {
		return notFound("user", "")
	}
	post, ok := s.store.Posts.Get(postID)
	if !ok || post.TopicID != topicID {
		return notFound("post", postID)
	}
	if !user.IsAdmin && post.UserID != user.ID {
		return &AuthorizationError{Reason: "only the author or an admin can delete a post"}
	}

	s.store.Posts.Remove(postID)
	if topic, ok := s.store.Topics.Get(topicID); ok {
		topic.ReplyCount--
		if topic.ReplyCount < 0 {
			// 单写者模型下不该出现，防御性夹底
			topic.ReplyCount = 0
		}
		s.store.SaveTopics()
	}
	s.store.SavePosts()
	return nil
}

// RecordView 每次打开话题计一次浏览，同一用户重复打开也计
func (s *DiscussionService) RecordView(topicID string) (*models.DiscussionTopic, error) {
	topic, ok := s.store.Topics.Get(topicID)
	if !ok {
		return nil, notFound("topic", topicID)
	}
	topic.ViewCount++
	s.store.SaveTopics()
	return topic, nil
}
