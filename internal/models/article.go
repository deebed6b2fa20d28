package models

type Article struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"` // Markdown 源文，详情接口渲染为安全 HTML
	Author     string `json:"author"`
	Date       string `json:"date"`
	Image      string `json:"image"`
	IsFeatured bool   `json:"is_featured,omitempty"`
}
