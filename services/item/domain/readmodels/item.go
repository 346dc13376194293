// Package readmodels holds the query-side projections of the item context.
// They are built fresh for every query and never turned back into aggregates.
package readmodels

import "time"

// TimeLayout is the wire format for projection timestamps.
const TimeLayout = time.RFC3339Nano

// ItemDetail is the full projection returned by single-item queries.
type ItemDetail struct {
	ID          int64   `json:"id"          example:"1"`
	Name        string  `json:"name"        example:"White T-Shirt"`
	Category    string  `json:"category"    example:"tops"`
	Color       string  `json:"color"       example:"white"`
	Brand       *string `json:"brand"       example:"Uniqlo"`
	Description *string `json:"description" example:"Crew neck, heavy cotton"`
	CreatedAt   string  `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
	UpdatedAt   string  `json:"updatedAt"   example:"2024-01-15T10:30:00Z"`
} // @name ItemDetail

// ItemListEntry is the slim projection used by list queries.
type ItemListEntry struct {
	ID       int64   `json:"id"       example:"1"`
	Name     string  `json:"name"     example:"White T-Shirt"`
	Category string  `json:"category" example:"tops"`
	Color    string  `json:"color"    example:"white"`
	Brand    *string `json:"brand"    example:"Uniqlo"`
} // @name ItemListEntry

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
