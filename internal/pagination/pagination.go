// Package pagination implements date-cursor paging over listings ordered by
// date descending. Page N is bounded by the date of the last record of pages
// 1..N-1, fetched as a cursor, rather than by a numeric offset.
package pagination

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// PageRequest holds pagination parameters parsed from the request path.
type PageRequest struct {
	Page  int
	Count int
}

// Defaults fills in default values when page or count are not provided.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Count < 1 {
		p.Count = 20
	}
}

// CursorRows returns how many records precede the requested page in the
// ordered set. The date of the last of those records is the page's cursor.
func (p *PageRequest) CursorRows() int {
	return (p.Page - 1) * p.Count
}

// DateCursor returns a GORM scope that restricts a date-descending query to
// records strictly after the cursor and limits it to the page size. A nil
// cursor means the first page.
func DateCursor(cursor *time.Time, count int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cursor != nil {
			db = db.Where("date < ?", *cursor)
		}
		return db.Limit(count)
	}
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Count      int   `json:"count"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, count int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(count)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		Count:      count,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
