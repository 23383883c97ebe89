// Package pagination translates 1-indexed pages into offset/limit windows.
package pagination

import "gorm.io/gorm"

// PageSize is the number of rows returned per page by every listing.
const PageSize = 25

// Window is an offset/limit pair.
type Window struct {
	Skip int
	Take int
}

// Paginate returns the window for page. Page is 1-indexed and not clamped:
// page 0 or below produces a negative Skip, which callers must reject or accept.
func Paginate(page, size int) Window {
	return Window{Skip: (page - 1) * size, Take: size}
}

// TotalPages is ceil(total/size). A non-positive size yields 0.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Scope applies w to a gorm query.
func (w Window) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(w.Skip).Limit(w.Take)
	}
}

// PageOrDefault resolves an optional page argument, defaulting to the first page.
func PageOrDefault(page *int32) int {
	if page == nil {
		return 1
	}
	return int(*page)
}
