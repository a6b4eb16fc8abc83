package domain

// PagedResult is the pagination envelope returned by the paged list
// endpoints and the repositories backing them.
type PagedResult[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// PageCount returns ceil(totalCount / pageSize). A pageSize below 1 is
// clamped to 1 so the result is always defined.
func PageCount(totalCount, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return (totalCount + pageSize - 1) / pageSize
}

// PageSlice returns the [(pageNumber-1)*pageSize, pageNumber*pageSize)
// window of items together with the filled envelope. Out-of-range
// pages yield an empty data slice, not an error.
func PageSlice[T any](items []T, pageNumber, pageSize int) PagedResult[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return PagedResult[T]{
		Data:       data,
		TotalCount: len(items),
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: PageCount(len(items), pageSize),
	}
}
