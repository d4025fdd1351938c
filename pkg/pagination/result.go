package pagination

// PageResult is one page of rows plus the totals a pager needs.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult builds a PageResult. An empty result still reports one page,
// and Data is never nil so it encodes as [].
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	pages := 1
	if pageSize > 0 && total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}

// HasPrev reports whether a page precedes this one.
func (r PageResult[T]) HasPrev() bool {
	return r.Page > 1
}

// HasNext reports whether a page follows this one.
func (r PageResult[T]) HasNext() bool {
	return r.Page < r.TotalPages
}

// PrevPage returns the previous page number, or 1 on the first page.
func (r PageResult[T]) PrevPage() int {
	return max(r.Page-1, 1)
}

// NextPage returns the next page number, or the last page when already there.
func (r PageResult[T]) NextPage() int {
	return min(r.Page+1, r.TotalPages)
}
