package services

import (
	"fmt"
)

// 领域错误分类：校验失败、越权、目标不存在。
// handlers/base.go 统一映射为 HTTP 状态码。

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "not allowed: " + e.Reason
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func notFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
