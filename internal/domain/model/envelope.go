// Package model defines the bookstore backend's wire records, one schema per domain.
package model

// Envelope is the uniform wrapper returned by every backend call.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Page is a paginated result.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// PageQuery carries pagination parameters shared by the history and search endpoints.
type PageQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps pagination into accepted bounds.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}
