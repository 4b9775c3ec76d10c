package model

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultOrderBy  = "id"
)

// PaginationParams selects one slice of a filtered, ordered listing.
// Build values through NewPagination so below-minimum inputs clamp to the
// defaults instead of being rejected.
type PaginationParams struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	OrderBy   string `json:"order_by"`
	Ascending bool   `json:"ascending"`
}

func NewPagination(page, pageSize int, orderBy string, ascending bool) PaginationParams {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}
	return PaginationParams{Page: page, PageSize: pageSize, OrderBy: orderBy, Ascending: ascending}
}

func DefaultPagination() PaginationParams {
	return NewPagination(0, 0, "", true)
}

// Page is one slice of a result set; Total is the filtered count
// independent of the slice bounds.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}
