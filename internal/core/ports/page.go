package ports

// PageSpec selects one page of a listing. Page is 1-based.
type PageSpec struct {
	Page int
	Size int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps the spec to sane bounds.
func (p PageSpec) Normalize() PageSpec {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

// Offset is the row offset matching the spec.
func (p PageSpec) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is one page of results plus paging metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a Page from a result slice and the total row count.
func NewPage[T any](items []T, total int64, spec PageSpec) *Page[T] {
	pages := int(total) / spec.Size
	if int(total)%spec.Size != 0 {
		pages++
	}
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       spec.Page,
		Size:       spec.Size,
		TotalPages: pages,
	}
}
