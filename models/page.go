package models

// Pagination defaults and bounds
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest describes the requested slice of a listing. Page is
// zero-based.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps the raw page/size values into valid bounds
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

// Offset returns the row offset for the request
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Limit returns the row limit for the request
func (p PageRequest) Limit() int {
	return p.Size
}

// Page is the paginated response envelope
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds a Page from one slice of results and the total row count
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
