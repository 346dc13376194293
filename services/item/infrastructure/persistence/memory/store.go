// Package memory implements the item repositories on an in-process map.
// It backs unit tests of the use cases and HTTP handlers; it is not used in
// production.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

type row struct {
	id          int64
	name        string
	category    string
	color       string
	brand       *string
	description *string
	createdAt   time.Time
	updatedAt   time.Time
}

// Store is the shared table behind one ItemWriteRepository/ItemReadRepository
// pair. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	rows   map[int64]row
	nextID int64
	fail   error
	calls  int
}

// NewStore returns an empty store whose first generated id is 1.
func NewStore() *Store {
	return &Store{rows: make(map[int64]row), nextID: 1}
}

// FailWith makes every subsequent repository call fail with a DATABASE_ERROR
// wrapping err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Calls reports how many repository calls reached the store.
func (s *Store) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

// Len reports the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// enter counts the call and returns the injected failure, if any.
// The caller must hold mu.
func (s *Store) enter(ctx context.Context) error {
	s.calls++
	if err := ctx.Err(); err != nil {
		return itemdomain.Database(err)
	}
	if s.fail != nil {
		return itemdomain.Database(s.fail)
	}
	return nil
}

func toRow(item *models.Item) row {
	return row{
		name:        item.Name().Value(),
		category:    item.Category().Value(),
		color:       item.Color().Value(),
		brand:       item.Brand(),
		description: item.Description(),
		createdAt:   item.CreatedAt(),
		updatedAt:   item.UpdatedAt(),
	}
}

func (r row) aggregate() *models.Item {
	return models.ReconstituteItem(models.ReconstituteItemParams{
		ID:          models.ReconstituteItemID(r.id),
		Name:        models.ReconstituteItemName(r.name),
		Category:    models.ReconstituteCategory(r.category),
		Color:       models.ReconstituteColor(r.color),
		Brand:       r.brand,
		Description: r.description,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	})
}

func (r row) detail() *readmodels.ItemDetail {
	return &readmodels.ItemDetail{
		ID:          r.id,
		Name:        r.name,
		Category:    r.category,
		Color:       r.color,
		Brand:       clone(r.brand),
		Description: clone(r.description),
		CreatedAt:   readmodels.FormatTime(r.createdAt),
		UpdatedAt:   readmodels.FormatTime(r.updatedAt),
	}
}

func (r row) entry() readmodels.ItemListEntry {
	return readmodels.ItemListEntry{
		ID:       r.id,
		Name:     r.name,
		Category: r.category,
		Color:    r.color,
		Brand:    clone(r.brand),
	}
}

// list returns the rows accepted by keep, newest first with ties by id desc.
// The caller must hold mu.
func (s *Store) list(keep func(row) bool) []readmodels.ItemListEntry {
	rows := make([]row, 0, len(s.rows))
	for _, r := range s.rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	slices.SortFunc(rows, func(a, b row) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(b.id, a.id)
	})

	out := make([]readmodels.ItemListEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry()
	}
	return out
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
