// Package repotest holds a behavioural test suite shared by every
// implementation of the item repositories.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// Factory returns a fresh, empty repository pair sharing one backing store.
type Factory func(t *testing.T) (repositories.ItemWriteRepository, repositories.ItemReadRepository)

func strPtr(s string) *string { return &s }

func newItem(t *testing.T, name, category string) *models.Item {
	t.Helper()
	item, err := models.NewItem(models.CreateItemParams{Name: name, Category: category, Color: "black"})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	return item
}

// Run exercises the write/read contract against repositories built by f.
func Run(t *testing.T, f Factory) {
	ctx := context.Background()

	t.Run("Save_InsertAssignsIDInPlace", func(t *testing.T) {
		write, _ := f(t)
		item := newItem(t, "Coat", models.CategoryOuter)

		saved, err := write.Save(ctx, item)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if saved != item {
			t.Fatal("Save must return the same pointer")
		}
		if !item.HasID() || item.ID().Value() <= 0 {
			t.Fatal("insert must assign a positive id")
		}
	})

	t.Run("Save_InsertGeneratesDistinctIDs", func(t *testing.T) {
		write, _ := f(t)
		a := newItem(t, "A", models.CategoryTops)
		b := newItem(t, "B", models.CategoryTops)
		if _, err := write.Save(ctx, a); err != nil {
			t.Fatalf("Save a: %v", err)
		}
		if _, err := write.Save(ctx, b); err != nil {
			t.Fatalf("Save b: %v", err)
		}
		if a.ID().Equals(b.ID()) {
			t.Fatalf("expected distinct ids, both %d", a.ID().Value())
		}
	})

	t.Run("FindByID_RoundTrip", func(t *testing.T) {
		write, read := f(t)
		item, err := models.NewItem(models.CreateItemParams{
			Name:        "White T-Shirt",
			Category:    models.CategoryTops,
			Color:       "white",
			Brand:       strPtr("Uniqlo"),
			Description: nil,
		})
		if err != nil {
			t.Fatalf("NewItem: %v", err)
		}
		if _, err := write.Save(ctx, item); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, err := write.FindByID(ctx, item.ID())
		if err != nil || got == nil {
			t.Fatalf("write.FindByID: %v, %v", got, err)
		}
		if got == item {
			t.Fatal("FindByID must return a fresh aggregate")
		}
		if !got.Name().Equals(item.Name()) || !got.Category().Equals(item.Category()) || !got.Color().Equals(item.Color()) {
			t.Fatal("scalar fields not preserved")
		}
		if got.Brand() == nil || *got.Brand() != "Uniqlo" || got.Description() != nil {
			t.Fatal("optional fields not preserved")
		}
		if !got.CreatedAt().Equal(item.CreatedAt()) {
			t.Fatalf("createdAt: got %v, want %v", got.CreatedAt(), item.CreatedAt())
		}

		detail, err := read.FindByID(ctx, item.ID())
		if err != nil || detail == nil {
			t.Fatalf("read.FindByID: %v, %v", detail, err)
		}
		if detail.ID != item.ID().Value() || detail.Name != "White T-Shirt" || detail.Category != "tops" || detail.Color != "white" {
			t.Fatalf("unexpected detail: %+v", detail)
		}
		if detail.Description != nil {
			t.Fatal("expected nil description")
		}
		if _, err := time.Parse(time.RFC3339Nano, detail.CreatedAt); err != nil {
			t.Fatalf("createdAt is not RFC 3339: %q", detail.CreatedAt)
		}
	})

	t.Run("FindByID_Absent", func(t *testing.T) {
		write, read := f(t)
		id := models.ReconstituteItemID(987654321)

		item, err := write.FindByID(ctx, id)
		if err != nil || item != nil {
			t.Fatalf("write.FindByID: expected nil, nil; got %v, %v", item, err)
		}
		detail, err := read.FindByID(ctx, id)
		if err != nil || detail != nil {
			t.Fatalf("read.FindByID: expected nil, nil; got %v, %v", detail, err)
		}
	})

	t.Run("Save_Update", func(t *testing.T) {
		write, read := f(t)
		item := newItem(t, "Original", models.CategoryTops)
		if _, err := write.Save(ctx, item); err != nil {
			t.Fatalf("Save: %v", err)
		}

		loaded, err := write.FindByID(ctx, item.ID())
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if err := loaded.UpdateName("Renamed"); err != nil {
			t.Fatalf("UpdateName: %v", err)
		}
		loaded.UpdateDescription(strPtr("soft"))
		saved, err := write.Save(ctx, loaded)
		if err != nil {
			t.Fatalf("Save update: %v", err)
		}
		if saved != loaded || !saved.ID().Equals(item.ID()) {
			t.Fatal("update must keep identity")
		}

		detail, err := read.FindByID(ctx, item.ID())
		if err != nil || detail == nil {
			t.Fatalf("read.FindByID: %v, %v", detail, err)
		}
		if detail.Name != "Renamed" || detail.Category != "tops" {
			t.Fatalf("unexpected detail after update: %+v", detail)
		}
		if detail.Description == nil || *detail.Description != "soft" {
			t.Fatal("description not updated")
		}
		created, _ := time.Parse(time.RFC3339Nano, detail.CreatedAt)
		updated, _ := time.Parse(time.RFC3339Nano, detail.UpdatedAt)
		if !updated.After(created) {
			t.Fatalf("updatedAt %s must be after createdAt %s", detail.UpdatedAt, detail.CreatedAt)
		}
	})

	t.Run("Save_UpdateVanishedRow", func(t *testing.T) {
		write, _ := f(t)
		item := newItem(t, "Ghost", models.CategoryShoes)
		if _, err := write.Save(ctx, item); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if _, err := write.Delete(ctx, item.ID()); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := item.UpdateColor("red"); err != nil {
			t.Fatalf("UpdateColor: %v", err)
		}
		_, err := write.Save(ctx, item)
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ITEM_NOT_FOUND, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		write, read := f(t)
		item := newItem(t, "Scarf", models.CategoryAccessories)
		if _, err := write.Save(ctx, item); err != nil {
			t.Fatalf("Save: %v", err)
		}

		removed, err := write.Delete(ctx, item.ID())
		if err != nil || !removed {
			t.Fatalf("first Delete: expected true, nil; got %v, %v", removed, err)
		}
		removed, err = write.Delete(ctx, item.ID())
		if err != nil || removed {
			t.Fatalf("second Delete: expected false, nil; got %v, %v", removed, err)
		}
		if detail, _ := read.FindByID(ctx, item.ID()); detail != nil {
			t.Fatal("deleted item must not be readable")
		}
	})

	t.Run("FindAll_NewestFirst", func(t *testing.T) {
		write, read := f(t)
		var ids []int64
		for _, name := range []string{"first", "second", "third"} {
			item := newItem(t, name, models.CategoryTops)
			if _, err := write.Save(ctx, item); err != nil {
				t.Fatalf("Save: %v", err)
			}
			ids = append(ids, item.ID().Value())
		}

		entries, err := read.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i, want := range []int64{ids[2], ids[1], ids[0]} {
			if entries[i].ID != want {
				t.Fatalf("entry %d: got id %d, want %d", i, entries[i].ID, want)
			}
		}
	})

	t.Run("FindByCategory", func(t *testing.T) {
		write, read := f(t)
		for _, c := range []string{models.CategoryTops, models.CategoryShoes, models.CategoryTops} {
			if _, err := write.Save(ctx, newItem(t, "x", c)); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}

		tops, err := read.FindByCategory(ctx, models.ReconstituteCategory(models.CategoryTops))
		if err != nil {
			t.Fatalf("FindByCategory: %v", err)
		}
		if len(tops) != 2 {
			t.Fatalf("expected 2 tops, got %d", len(tops))
		}
		for _, e := range tops {
			if e.Category != models.CategoryTops {
				t.Fatalf("unexpected category %q", e.Category)
			}
		}

		none, err := read.FindByCategory(ctx, models.ReconstituteCategory(models.CategoryAccessories))
		if err != nil {
			t.Fatalf("FindByCategory: %v", err)
		}
		if none == nil || len(none) != 0 {
			t.Fatalf("expected empty non-nil slice, got %v", none)
		}
	})
}
