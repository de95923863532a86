package listing

// Page is a 1-based page window.
type Page struct {
	Number int
	Limit  int
}

// NewPage falls back to DefaultPage and DefaultLimit for non-positive values and
// clamps oversized values to MaxPage and MaxLimit.
func NewPage(number, limit int) Page {
	switch {
	case number <= 0:
		number = DefaultPage
	case number > MaxPage:
		number = MaxPage
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// PageRef points at a neighbouring page.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination links to the neighbouring pages that exist.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Paginate computes the links for page given the total number of matching rows.
func Paginate(page Page, total int64) Pagination {
	var p Pagination
	if int64(page.Number)*int64(page.Limit) < total {
		p.Next = &PageRef{Page: page.Number + 1, Limit: page.Limit}
	}
	if page.Offset() > 0 {
		p.Prev = &PageRef{Page: page.Number - 1, Limit: page.Limit}
	}
	return p
}

// Result is one page of items. Count is the size of this page, not the total.
type Result[T any] struct {
	Count      int
	Total      int64
	Pagination Pagination
	Data       []T
}

// NewResult wraps items fetched for page out of total matching rows.
func NewResult[T any](items []T, page Page, total int64) Result[T] {
	page = NewPage(page.Number, page.Limit)
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Count:      len(items),
		Total:      total,
		Pagination: Paginate(page, total),
		Data:       items,
	}
}

// Map converts the items of a result, keeping its counters.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, 0, len(r.Data))
	for _, item := range r.Data {
		out = append(out, fn(item))
	}
	return Result[U]{Count: r.Count, Total: r.Total, Pagination: r.Pagination, Data: out}
}
