package models

import (
	"strings"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// Color is free text, required to be non-blank.
type Color struct {
	value string
}

// NewColor trims s and returns INVALID_COLOR when nothing is left.
func NewColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Color{}, itemdomain.InvalidColor("Color cannot be empty")
	}
	return Color{value: trimmed}, nil
}

// ReconstituteColor wraps a stored color without validation.
func ReconstituteColor(s string) Color {
	return Color{value: s}
}

func (c Color) Value() string           { return c.value }
func (c Color) String() string          { return c.value }
func (c Color) Equals(other Color) bool { return c.value == other.value }
func (c Color) IsZero() bool            { return c.value == "" }
