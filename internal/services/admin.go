package services

import (
	"strings"
	"time"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
	"greenshelf/internal/utils"
)

// AdminService 内容管理：商品/文章/活动/公告的增删与状态标签维护。
// 路由层有管理员门禁，这里仍逐一复核，操作必须整体生效或整体不生效。
type AdminService struct {
	store   *store.Store
	ranking *RankingService
}

func NewAdminService(s *store.Store, r *RankingService) *AdminService {
	return &AdminService{store: s, ranking: r}
}

func (s *AdminService) requireAdmin(user *models.User) error {
	if user == nil {
		return notFound("user", "")
	}
	if !user.IsAdmin {
		return &AuthorizationError{Reason: "admin privilege required"}
	}
	return nil
}

type ProductInput struct {
	Category models.ProductCategory `json:"category"`
	Name     string                 `json:"name"`
	Image    string                 `json:"image"`
	Info     string                 `json:"info"`
	Status   []models.ProductStatus `json:"status"`
}

// AddProduct 新商品插入集合头部，零票零评价起步
func (s *AdminService) AddProduct(user *models.User, in ProductInput) (*models.Product, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	if !models.ValidCategory(in.Category) {
		return nil, invalid("category", "unknown category")
	}

	p := &models.Product{
		ID:       utils.NewEntityID(in.Name),
		Category: in.Category,
		Name:     strings.TrimSpace(in.Name),
		Image:    in.Image,
		Info:     in.Info,
		Reviews:  []models.Review{},
		Status:   []models.ProductStatus{},
	}
	for _, st := range in.Status {
		if !models.ValidStatus(st) {
			return nil, invalid("status", "unknown status tag")
		}
		p.AddStatus(st) // set 语义，输入里的重复项塌缩
	}

	if err := s.store.Products.InsertFront(p); err != nil {
		return nil, err
	}
	s.store.SaveProducts()
	s.ranking.MarkDirty()
	return p, nil
}

type ArticleInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	Image      string `json:"image"`
	IsFeatured bool   `json:"is_featured"`
}

func (s *AdminService) AddArticle(user *models.User, in ArticleInput) (*models.Article, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalid("content", "must not be empty")
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	}

	a := &models.Article{
		ID:         utils.NewEntityID(in.Title),
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		Author:     in.Author,
		Date:       in.Date,
		Image:      in.Image,
		IsFeatured: in.IsFeatured,
	}
	if err := s.store.Articles.InsertFront(a); err != nil {
		return nil, err
	}
	s.store.SaveArticles()
	return a, nil
}

type EventInput struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

// AddEvent 插入后整表按日期升序重排，日历展示依赖这个顺序
func (s *AdminService) AddEvent(user *models.User, in EventInput) (*models.Event, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if in.Date.IsZero() {
		return nil, invalid("date", "must be set")
	}

	e := &models.Event{
		ID:          utils.NewEntityID(in.Title),
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := s.store.Events.Insert(e); err != nil {
		return nil, err
	}
	s.store.Events.SortStable(func(a, b *models.Event) bool { return a.Date.Before(b.Date) })
	s.store.SaveEvents()
	return e, nil
}

type NoticeInput struct {
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Type    models.NoticeType `json:"type"`
}

func (s *AdminService) AddNotice(user *models.User, in NoticeInput) (*models.HeaderNotice, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if !models.ValidNoticeType(in.Type) {
		return nil, invalid("type", "unknown notice type")
	}

	n := &models.HeaderNotice{
		ID:      "notice-" + utils.RandStringBytesMaskImpr(8),
		Title:   strings.TrimSpace(in.Title),
		Message: in.Message,
		Type:    in.Type,
	}
	if err := s.store.Notices.InsertFront(n); err != nil {
		return nil, err
	}
	s.store.SaveNotices()
	return n, nil
}

func (s *AdminService) UpdateNotice(user *models.User, noticeID string, in NoticeInput) (*models.HeaderNotice, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if !models.ValidNoticeType(in.Type) {
		return nil, invalid("type", "unknown notice type")
	}
	n, ok := s.store.Notices.Get(noticeID)
	if !ok {
		return nil, notFound("notice", noticeID)
	}

	n.Title = strings.TrimSpace(in.Title)
	n.Message = in.Message
	n.Type = in.Type
	s.store.SaveNotices()
	return n, nil
}

func (s *AdminService) DeleteNotice(user *models.User, noticeID string) error {
	if err := s.requireAdmin(user); err != nil {
		return err
	}
	if !s.store.Notices.Remove(noticeID) {
		return notFound("notice", noticeID)
	}
	s.store.SaveNotices()
	return nil
}

// DeleteProduct 用户互动表里残留的该商品 id 不清理，读取侧容忍悬空引用
func (s *AdminService) DeleteProduct(user *models.User, productID string) error {
	if err := s.requireAdmin(user); err != nil {
		return err
	}
	if !s.store.Products.Remove(productID) {
		return notFound("product", productID)
	}
	s.store.SaveProducts()
	s.ranking.MarkDirty()
	return nil
}

func (s *AdminService) DeleteArticle(user *models.User, articleID string) error {
	if err := s.requireAdmin(user); err != nil {
		return err
	}
	if !s.store.Articles.Remove(articleID) {
		return notFound("article", articleID)
	}
	s.store.SaveArticles()
	utils.GetRenderCache().Delete("article:" + articleID)
	return nil
}

func (s *AdminService) DeleteEvent(user *models.User, eventID string) error {
	if err := s.requireAdmin(user); err != nil {
		return err
	}
	if !s.store.Events.Remove(eventID) {
		return notFound("event", eventID)
	}
	s.store.SaveEvents()
	return nil
}

// UpdateProductStatus 单商品状态标签开关，set 语义（重复添加幂等）
func (s *AdminService) UpdateProductStatus(user *models.User, productID string, status models.ProductStatus, present bool) (*models.Product, error) {
	if err := s.requireAdmin(user); err != nil {
		return nil, err
	}
	if !models.ValidStatus(status) {
		return nil, invalid("status", "unknown status tag")
	}
	p, ok := s.store.Products.Get(productID)
	if !ok {
		return nil, notFound("product", productID)
	}

	if present {
		p.AddStatus(status)
	} else {
		p.RemoveStatus(status)
	}
	s.store.SaveProducts()
	s.ranking.MarkDirty()
	return p, nil
}

// BulkUpdateProductStatus 批量打/撤标签；列表里查不到的 id 直接跳过。
// 返回实际改动的商品数。
func (s *AdminService) BulkUpdateProductStatus(user *models.User, productIDs []string, status models.ProductStatus, action string) (int, error) {
	if err := s.requireAdmin(user); err != nil {
		return 0, err
	}
	if !models.ValidStatus(status) {
		return 0, invalid("status", "unknown status tag")
	}
	if action != "add" && action != "remove" {
		return 0, invalid("action", "must be add or remove")
	}

	touched := 0
	for _, id := range productIDs {
		p, ok := s.store.Products.Get(id)
		if !ok {
			continue
		}
		if action == "add" {
			p.AddStatus(status)
		} else {
			p.RemoveStatus(status)
		}
		touched++
	}
	if touched > 0 {
		s.store.SaveProducts()
		s.ranking.MarkDirty()
	}
	return touched, nil
}
