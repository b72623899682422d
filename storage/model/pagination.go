package model

// Pagination defaults and bounds for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams are the normalized page/limit parameters of a paginated listing.
type PageParams struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit to sane values: page >= 1,
// 1 <= limit <= MaxLimit, with the documented defaults for zero values.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of records to skip for the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes the position of a returned page within the full
// result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the pagination envelope for the passed params and
// total count. TotalPages is ceil(total/limit), or 0 when total is 0.
func NewPagination(p PageParams, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
