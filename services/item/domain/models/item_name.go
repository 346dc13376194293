package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// ItemName is a value object representing a valid item name.
// Encapsulates validation rules: 1 <= len(trimmed name) <= 100 characters.
type ItemName struct {
	value string
}

const maxItemNameLength = 100

// NewItemName trims s and constructs a valid ItemName, or returns
// INVALID_ITEM_NAME if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ItemName{}, itemdomain.InvalidItemName("ItemName cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxItemNameLength {
		return ItemName{}, itemdomain.InvalidItemName(
			fmt.Sprintf("ItemName must be at most %d characters", maxItemNameLength))
	}
	return ItemName{value: trimmed}, nil
}

// ReconstituteItemName wraps a stored name without validation.
func ReconstituteItemName(s string) ItemName {
	return ItemName{value: s}
}

// Value returns the underlying string value.
func (n ItemName) Value() string { return n.value }

// String returns the underlying string value.
func (n ItemName) String() string { return n.value }

// Equals reports whether both names hold the same string.
func (n ItemName) Equals(other ItemName) bool { return n.value == other.value }

// IsZero reports whether n was never constructed.
func (n ItemName) IsZero() bool { return n.value == "" }
