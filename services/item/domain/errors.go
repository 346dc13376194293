package domain

import (
	"errors"
	"fmt"
)

// Kind identifies one variant of the closed item error taxonomy.
type Kind string

const (
	KindInvalidItemID   Kind = "INVALID_ITEM_ID"
	KindInvalidItemName Kind = "INVALID_ITEM_NAME"
	KindInvalidCategory Kind = "INVALID_CATEGORY"
	KindInvalidColor    Kind = "INVALID_COLOR"
	KindItemNotFound    Kind = "ITEM_NOT_FOUND"
	KindDatabase        Kind = "DATABASE_ERROR"
)

// Error is the only error type returned across the item core.
// Message is set for validation kinds, ItemID for ITEM_NOT_FOUND and Cause
// for DATABASE_ERROR.
type Error struct {
	Kind    Kind
	Message string
	ItemID  int64
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindItemNotFound && e.ItemID != 0:
		return fmt.Sprintf("item %d not found", e.ItemID)
	case e.Kind == KindDatabase && e.Cause != nil:
		return fmt.Sprintf("database error: %v", e.Cause)
	case e.Message != "":
		return e.Message
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	ErrInvalidItemID   = &Error{Kind: KindInvalidItemID}
	ErrInvalidItemName = &Error{Kind: KindInvalidItemName}
	ErrInvalidCategory = &Error{Kind: KindInvalidCategory}
	ErrInvalidColor    = &Error{Kind: KindInvalidColor}
	ErrItemNotFound    = &Error{Kind: KindItemNotFound}
	ErrDatabase        = &Error{Kind: KindDatabase}
)

func InvalidItemID(msg string) error   { return &Error{Kind: KindInvalidItemID, Message: msg} }
func InvalidItemName(msg string) error { return &Error{Kind: KindInvalidItemName, Message: msg} }
func InvalidCategory(msg string) error { return &Error{Kind: KindInvalidCategory, Message: msg} }
func InvalidColor(msg string) error    { return &Error{Kind: KindInvalidColor, Message: msg} }

// ItemNotFound reports that no item exists for id.
func ItemNotFound(id int64) error {
	return &Error{Kind: KindItemNotFound, ItemID: id}
}

// Database wraps an infrastructure failure. The cause stays reachable via
// errors.Unwrap but is never shown to API clients.
func Database(cause error) error {
	return &Error{Kind: KindDatabase, Cause: cause}
}

// KindOf returns the Kind carried by err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether err is one of the INVALID_* kinds.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidItemID, KindInvalidItemName, KindInvalidCategory, KindInvalidColor:
		return true
	default:
		return false
	}
}
