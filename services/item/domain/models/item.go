package models

import (
	"time"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// Item is the core aggregate for this bounded context. Its fields are
// unexported: the aggregate is the only code that mutates them.
type Item struct {
	id          ItemID
	hasID       bool // id is meaningful only when true
	name        ItemName
	category    Category
	color       Color
	brand       *string
	description *string
	createdAt   time.Time
	updatedAt   time.Time
}

// CreateItemParams carries raw, unvalidated input for NewItem.
type CreateItemParams struct {
	Name        string
	Category    string
	Color       string
	Brand       *string
	Description *string
}

// ReconstituteItemParams carries trusted values loaded from storage.
type ReconstituteItemParams struct {
	ID          ItemID
	Name        ItemName
	Category    Category
	Color       Color
	Brand       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem validates every required field and returns an Item without an id.
// Validation stops at the first failing field (name, category, color).
func NewItem(p CreateItemParams) (*Item, error) {
	name, err := NewItemName(p.Name)
	if err != nil {
		return nil, err
	}
	category, err := NewCategory(p.Category)
	if err != nil {
		return nil, err
	}
	color, err := NewColor(p.Color)
	if err != nil {
		return nil, err
	}

	now := now()
	return &Item{
		name:        name,
		category:    category,
		color:       color,
		brand:       cloneString(p.Brand),
		description: cloneString(p.Description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstituteItem rebuilds a persisted Item. No validation is performed.
func ReconstituteItem(p ReconstituteItemParams) *Item {
	return &Item{
		id:          p.ID,
		hasID:       true,
		name:        p.Name,
		category:    p.Category,
		color:       p.Color,
		brand:       cloneString(p.Brand),
		description: cloneString(p.Description),
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}
}

// ID returns the assigned id. Calling it before the item is persisted is a
// programming error and panics; check HasID first.
func (i *Item) ID() ItemID {
	if !i.hasID {
		panic("models: item does not have an ID yet")
	}
	return i.id
}

func (i *Item) Name() ItemName       { return i.name }
func (i *Item) Category() Category   { return i.category }
func (i *Item) Color() Color         { return i.color }
func (i *Item) Brand() *string       { return cloneString(i.brand) }
func (i *Item) Description() *string { return cloneString(i.description) }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// HasID reports whether the item has been persisted.
func (i *Item) HasID() bool { return i.hasID }

// AssignID sets the storage id. It succeeds once; a second call returns
// INVALID_ITEM_ID so a double insert cannot go unnoticed.
func (i *Item) AssignID(id ItemID) error {
	if i.hasID {
		return itemdomain.InvalidItemID("Item already has an ID assigned")
	}
	i.id = id
	i.hasID = true
	return nil
}

// UpdateName validates and replaces the name.
func (i *Item) UpdateName(raw string) error {
	name, err := NewItemName(raw)
	if err != nil {
		return err
	}
	i.name = name
	i.touch()
	return nil
}

// UpdateCategory validates and replaces the category.
func (i *Item) UpdateCategory(raw string) error {
	category, err := NewCategory(raw)
	if err != nil {
		return err
	}
	i.category = category
	i.touch()
	return nil
}

// UpdateColor validates and replaces the color.
func (i *Item) UpdateColor(raw string) error {
	color, err := NewColor(raw)
	if err != nil {
		return err
	}
	i.color = color
	i.touch()
	return nil
}

// UpdateBrand replaces the brand; nil clears it.
func (i *Item) UpdateBrand(brand *string) {
	i.brand = cloneString(brand)
	i.touch()
}

// UpdateDescription replaces the description; nil clears it.
func (i *Item) UpdateDescription(description *string) {
	i.description = cloneString(description)
	i.touch()
}

// Touch marks the item as modified without changing any field. An update
// that carries no fields still moves updatedAt forward on save.
func (i *Item) Touch() { i.touch() }

// touch moves updatedAt forward. The new value is strictly after both the
// previous updatedAt and createdAt even when the clock has not advanced.
func (i *Item) touch() {
	t := now()
	floor := i.updatedAt
	if i.createdAt.After(floor) {
		floor = i.createdAt
	}
	if !t.After(floor) {
		t = floor.Add(time.Microsecond)
	}
	i.updatedAt = t
}

// now returns the current UTC time at the precision Postgres stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
