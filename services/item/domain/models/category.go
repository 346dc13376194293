package models

import (
	"fmt"
	"strings"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// Category values. Matching is case-sensitive.
const (
	CategoryOuter       = "outer"
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
)

var validCategories = []string{
	CategoryOuter,
	CategoryTops,
	CategoryBottoms,
	CategoryShoes,
	CategoryAccessories,
}

// Category is the clothing category of an Item.
type Category struct {
	value string
}

// Categories returns the accepted category values in display order.
func Categories() []string {
	out := make([]string, len(validCategories))
	copy(out, validCategories)
	return out
}

// NewCategory returns INVALID_CATEGORY unless s is one of Categories().
func NewCategory(s string) (Category, error) {
	for _, c := range validCategories {
		if s == c {
			return Category{value: s}, nil
		}
	}
	return Category{}, itemdomain.InvalidCategory(fmt.Sprintf(
		"Invalid category: %q. Must be one of: %s", s, strings.Join(validCategories, ", ")))
}

// ReconstituteCategory wraps a stored category without validation.
func ReconstituteCategory(s string) Category {
	return Category{value: s}
}

func (c Category) Value() string              { return c.value }
func (c Category) String() string             { return c.value }
func (c Category) Equals(other Category) bool { return c.value == other.value }
func (c Category) IsZero() bool               { return c.value == "" }
