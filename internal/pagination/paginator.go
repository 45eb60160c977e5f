// Package pagination slices ordered listings into fixed-size pages and
// builds the metadata block every paginated response carries.
package pagination

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

// PostsPerPage is the fixed page size for all post listings.
const PostsPerPage = 10

// Meta describes one page of a listing
type Meta struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PageParam extracts the 1-based "page" query parameter, clamping
// anything unparsable or below one to the first page.
func PageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset converts a 1-based page number into a row offset
func Offset(page int) int {
	return (page - 1) * PostsPerPage
}

// NewMeta builds the metadata block for a page of totalItems items
func NewMeta(page int, totalItems int64) Meta {
	totalPages := int(math.Ceil(float64(totalItems) / float64(PostsPerPage)))
	return Meta{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    PostsPerPage,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
