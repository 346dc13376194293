package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/cached"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer container for this bounded context.
// It wires the use cases with their infrastructure implementations.
type Services struct {
	CreateItem          *CreateItem
	UpdateItem          *UpdateItem
	DeleteItem          *DeleteItem
	GetItem             *GetItem
	ListItems           *ListItems
	ListItemsByCategory *ListItemsByCategory
}

// New wires all item use cases with infrastructure from the Application container.
func New(a *app.Application) *Services {
	// A nil *EventBus must not reach the repository as a non-nil interface.
	var bus postgres.TxPublisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	var write repositories.ItemWriteRepository = postgres.NewItemWriteRepository(a.Db, bus)
	var read repositories.ItemReadRepository = postgres.NewItemReadRepository(a.Db)

	if a.Redis != nil {
		detail := cache.NewItemCache(a.Redis, a.ItemCacheTTL)
		write = cached.NewItemWriteRepository(write, detail, a.Logger)
		read = cached.NewItemReadRepository(read, detail, a.Logger)
	}
	return NewWithRepositories(write, read)
}

// NewWithRepositories builds the use cases over explicit repositories.
func NewWithRepositories(write repositories.ItemWriteRepository, read repositories.ItemReadRepository) *Services {
	obs := telemetry.NewUseCaseInstruments(instrumentationName)
	return &Services{
		CreateItem:          NewCreateItem(write, read, obs),
		UpdateItem:          NewUpdateItem(write, read, obs),
		DeleteItem:          NewDeleteItem(write, obs),
		GetItem:             NewGetItem(read, obs),
		ListItems:           NewListItems(read, obs),
		ListItemsByCategory: NewListItemsByCategory(read, obs),
	}
}
