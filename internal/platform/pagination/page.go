package pagination

// Page describes the window applied to a result set.
type Page struct {
	Total   int  `json:"total"   doc:"Total rows matching the filters, ignoring the window" example:"45"`
	Limit   int  `json:"limit"   doc:"Window size"                                          example:"20"`
	Offset  int  `json:"offset"  doc:"Window start"                                         example:"0"`
	HasMore bool `json:"hasMore" doc:"Whether rows exist beyond this window"                example:"true"`
}

// Window applies offset/limit windowing to a slice of items.
//
// The returned Page carries the total before windowing and the hasMore
// flag, computed as offset+limit < total. An offset at or past the end
// yields an empty page, never an error.
func Window[T any](items []T, limit, offset int) ([]T, Page) {
	total := len(items)

	start := min(offset, total)
	end := min(start+limit, total)

	return items[start:end], Page{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}

// NewPage builds pagination metadata for a pre-windowed result.
func NewPage(total, limit, offset int) Page {
	return Page{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}
