package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	domainevents "github.com/ghuser/wardrobe/services/item/domain/events"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	domainsvcs "github.com/ghuser/wardrobe/services/item/domain/services"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/postgres/db"
)

// TxPublisher publishes messages inside a database transaction.
// *events.EventBus satisfies it.
type TxPublisher interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error
}

// ItemWriteRepository implements repositories.ItemWriteRepository against PostgreSQL.
// Every row change and its domain event commit in one transaction.
type ItemWriteRepository struct {
	db  *database.Database
	bus TxPublisher
}

// NewItemWriteRepository returns an ItemWriteRepository backed by the given
// database. bus may be nil, in which case no events are published.
func NewItemWriteRepository(database *database.Database, bus TxPublisher) *ItemWriteRepository {
	return &ItemWriteRepository{db: database, bus: bus}
}

// Save inserts item when it has no id, otherwise updates the existing row.
// On insert the generated id is assigned onto item after the commit.
func (r *ItemWriteRepository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := domainsvcs.ValidateItemForSave(item); err != nil {
		return nil, itemdomain.Database(fmt.Errorf("refusing to persist item: %w", err))
	}
	if item.HasID() {
		if err := r.update(ctx, item); err != nil {
			return nil, asDomainError(err)
		}
		return item, nil
	}

	id, err := r.insert(ctx, item)
	if err != nil {
		return nil, asDomainError(err)
	}
	if err := item.AssignID(models.ReconstituteItemID(id)); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemWriteRepository) insert(ctx context.Context, item *models.Item) (int64, error) {
	var id int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = db.New(tx).InsertItem(ctx, db.InsertItemParams{
			Name:        item.Name().Value(),
			Category:    item.Category().Value(),
			Color:       item.Color().Value(),
			Brand:       nullString(item.Brand()),
			Description: nullString(item.Description()),
			CreatedAt:   item.CreatedAt(),
			UpdatedAt:   item.UpdatedAt(),
		})
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("insert item: no id returned")
		}
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		eventID := uuid.New()
		return r.publish(ctx, tx, domainevents.TopicItemCreated, eventID, domainevents.ItemCreatedEvent{
			EventID:     eventID,
			Version:     domainevents.Version,
			ItemID:      id,
			Name:        item.Name().Value(),
			Category:    item.Category().Value(),
			Color:       item.Color().Value(),
			Brand:       item.Brand(),
			Description: item.Description(),
			OccurredAt:  item.CreatedAt(),
		})
	})
	return id, err
}

func (r *ItemWriteRepository) update(ctx context.Context, item *models.Item) error {
	id := item.ID().Value()
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := db.New(tx).UpdateItem(ctx, db.UpdateItemParams{
			ID:          id,
			Name:        item.Name().Value(),
			Category:    item.Category().Value(),
			Color:       item.Color().Value(),
			Brand:       nullString(item.Brand()),
			Description: nullString(item.Description()),
			UpdatedAt:   item.UpdatedAt(),
		})
		if errors.Is(err, sql.ErrNoRows) {
			return itemdomain.ItemNotFound(id)
		}
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		eventID := uuid.New()
		return r.publish(ctx, tx, domainevents.TopicItemUpdated, eventID, domainevents.ItemUpdatedEvent{
			EventID:     eventID,
			Version:     domainevents.Version,
			ItemID:      id,
			Name:        item.Name().Value(),
			Category:    item.Category().Value(),
			Color:       item.Color().Value(),
			Brand:       item.Brand(),
			Description: item.Description(),
			OccurredAt:  item.UpdatedAt(),
		})
	})
}

// FindByID loads the aggregate, or returns nil, nil when the row is absent.
func (r *ItemWriteRepository) FindByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id.Value())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, itemdomain.Database(fmt.Errorf("query item: %w", err))
	}
	return rowToItem(row), nil
}

// Delete removes the row and reports whether one existed.
func (r *ItemWriteRepository) Delete(ctx context.Context, id models.ItemID) (bool, error) {
	var removed bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, id.Value())
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return nil
		}
		removed = true
		eventID := uuid.New()
		return r.publish(ctx, tx, domainevents.TopicItemDeleted, eventID, domainevents.ItemDeletedEvent{
			EventID:    eventID,
			Version:    domainevents.Version,
			ItemID:     id.Value(),
			OccurredAt: now(),
		})
	})
	if err != nil {
		return false, asDomainError(err)
	}
	return removed, nil
}

func (r *ItemWriteRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	if r.bus == nil {
		return nil
	}
	msg, err := events.NewMessage(eventID.String(), domainevents.Version, event)
	if err != nil {
		return err
	}
	if err := r.bus.PublishInTx(ctx, tx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// asDomainError passes *itemdomain.Error values through and wraps anything
// else as DATABASE_ERROR.
func asDomainError(err error) error {
	if itemdomain.KindOf(err) != "" {
		return err
	}
	return itemdomain.Database(err)
}
