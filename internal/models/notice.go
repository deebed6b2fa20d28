package models

type NoticeType string

const (
	NoticeTypeInfo    NoticeType = "info"
	NoticeTypeWarning NoticeType = "warning"
	NoticeTypeSuccess NoticeType = "success"
	NoticeTypePromo   NoticeType = "promo"
)

// ValidNoticeType 校验公告类型
func ValidNoticeType(t NoticeType) bool {
	switch t {
	case NoticeTypeInfo, NoticeTypeWarning, NoticeTypeSuccess, NoticeTypePromo:
		return true
	}
	return false
}

// HeaderNotice 页头滚动公告
type HeaderNotice struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	Type    NoticeType `json:"type"`
}
