package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/migrator"
	domainevents "github.com/ghuser/wardrobe/services/item/domain/events"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/postgres/db"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/repotest"
)

// recordingPublisher captures published messages without touching the outbox.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []*message.Message
}

func (p *recordingPublisher) PublishInTx(_ context.Context, _ *sql.Tx, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, m := range msgs {
		p.topics = append(p.topics, topic)
		p.msgs = append(p.msgs, m)
	}
	return nil
}

func openTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	log := logger.NewWithWriter(io.Discard, "error")

	d, err := database.NewPool(ctx, url, log)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(d.Close)

	if err := migrator.RunMigrations(ctx, d.DB(), os.DirFS("../../../../../migrations/item"), log); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return d
}

func truncate(t *testing.T, d *database.Database) {
	t.Helper()
	if _, err := d.DB().ExecContext(context.Background(), `TRUNCATE item.items RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestRepositoryContract_Integration(t *testing.T) {
	d := openTestDatabase(t)
	repotest.Run(t, func(t *testing.T) (repositories.ItemWriteRepository, repositories.ItemReadRepository) {
		truncate(t, d)
		return NewItemWriteRepository(d, nil), NewItemReadRepository(d)
	})
}

func TestWriteRepository_PublishesEvents_Integration(t *testing.T) {
	d := openTestDatabase(t)
	truncate(t, d)
	ctx := context.Background()

	pub := &recordingPublisher{}
	repo := NewItemWriteRepository(d, pub)

	item, _ := models.NewItem(models.CreateItemParams{Name: "Boots", Category: models.CategoryShoes, Color: "brown"})
	if _, err := repo.Save(ctx, item); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := item.UpdateColor("black"); err != nil {
		t.Fatalf("UpdateColor: %v", err)
	}
	if _, err := repo.Save(ctx, item); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if _, err := repo.Delete(ctx, item.ID()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// A miss publishes nothing.
	if _, err := repo.Delete(ctx, item.ID()); err != nil {
		t.Fatalf("Delete miss: %v", err)
	}

	want := []string{domainevents.TopicItemCreated, domainevents.TopicItemUpdated, domainevents.TopicItemDeleted}
	if len(pub.topics) != len(want) {
		t.Fatalf("expected topics %v, got %v", want, pub.topics)
	}
	for i, topic := range want {
		if pub.topics[i] != topic {
			t.Fatalf("topic %d: got %q, want %q", i, pub.topics[i], topic)
		}
		var ref domainevents.ItemRef
		if err := json.Unmarshal(pub.msgs[i].Payload, &ref); err != nil {
			t.Fatalf("payload %d: %v", i, err)
		}
		if ref.ItemID != item.ID().Value() {
			t.Fatalf("payload %d: item_id %d, want %d", i, ref.ItemID, item.ID().Value())
		}
		if pub.msgs[i].Metadata.Get(events.MetadataEventID) != ref.EventID.String() {
			t.Fatalf("payload %d: metadata event id mismatch", i)
		}
	}
}

func TestRowMapping(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("JST", 9*60*60))
	row := db.ItemItem{
		ID:          5,
		Name:        "Cardigan",
		Category:    models.CategoryTops,
		Color:       "beige",
		Brand:       sql.NullString{String: "Muji", Valid: true},
		Description: sql.NullString{},
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Second),
	}

	item := rowToItem(row)
	if item.ID().Value() != 5 || item.Name().Value() != "Cardigan" {
		t.Fatalf("unexpected aggregate: %d %q", item.ID().Value(), item.Name().Value())
	}
	if item.Brand() == nil || *item.Brand() != "Muji" || item.Description() != nil {
		t.Fatal("optional fields not mapped")
	}
	if item.CreatedAt().Location() != time.UTC {
		t.Fatal("timestamps must be normalised to UTC")
	}

	detail := rowToDetail(row)
	if detail.CreatedAt != "2024-01-15T01:30:00Z" || detail.UpdatedAt != "2024-01-15T01:30:01Z" {
		t.Fatalf("unexpected timestamps: %q %q", detail.CreatedAt, detail.UpdatedAt)
	}
	if detail.Description != nil {
		t.Fatal("expected nil description")
	}
}

func TestNullString(t *testing.T) {
	if ns := nullString(nil); ns.Valid {
		t.Fatal("nil must map to NULL")
	}
	s := ""
	if ns := nullString(&s); !ns.Valid || ns.String != "" {
		t.Fatal("empty string must stay a non-NULL value")
	}
	if p := stringPtr(sql.NullString{String: "x", Valid: true}); p == nil || *p != "x" {
		t.Fatal("valid NullString must map to a pointer")
	}
}
