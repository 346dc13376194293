package models

import (
	"errors"
	"strconv"
	"strings"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// ItemID is the storage-assigned identifier of an Item. Always positive.
type ItemID struct {
	value int64
}

// NewItemID validates id and returns INVALID_ITEM_ID when it is not positive.
func NewItemID(id int64) (ItemID, error) {
	if id <= 0 {
		return ItemID{}, itemdomain.InvalidItemID("ItemId must be a positive integer")
	}
	return ItemID{value: id}, nil
}

// ParseItemID validates untrusted text such as a URL path segment.
// Fractional or non-numeric input is rejected as a non-integer.
func ParseItemID(raw string) (ItemID, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ItemID{}, itemdomain.InvalidItemID("ItemId is out of range")
		}
		return ItemID{}, itemdomain.InvalidItemID("ItemId must be an integer")
	}
	return NewItemID(n)
}

// ReconstituteItemID wraps an id read back from storage without validation.
func ReconstituteItemID(id int64) ItemID {
	return ItemID{value: id}
}

// Value returns the underlying integer.
func (id ItemID) Value() int64 { return id.value }

// String returns the decimal form of the id.
func (id ItemID) String() string { return strconv.FormatInt(id.value, 10) }

// Equals reports whether both ids hold the same value.
func (id ItemID) Equals(other ItemID) bool { return id.value == other.value }

