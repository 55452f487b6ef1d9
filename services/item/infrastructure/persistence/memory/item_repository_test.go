package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/orcamento/services/item/domain"
	"github.com/ghuser/orcamento/services/item/domain/models"
)

func TestItemRepository_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	rice := models.NewItem("Rice", 2, 3.5)
	beans := models.NewItem("Beans", 1, 10)
	for _, it := range []*models.Item{rice, beans} {
		if err := repo.Save(ctx, it); err != nil {
			t.Fatalf("Save(%s): %v", it.Name, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != rice.ID || items[1].ID != beans.ID {
		t.Fatalf("unexpected list order: %+v", items)
	}

	deleted, err := repo.DeleteByID(ctx, rice.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if deleted.Name != "Rice" {
		t.Errorf("deleted name: got %q", deleted.Name)
	}

	items, _ = repo.List(ctx)
	if len(items) != 1 || items[0].ID != beans.ID {
		t.Fatalf("expected only beans to remain, got %+v", items)
	}
}

func TestItemRepository_DeleteUnknown(t *testing.T) {
	_, err := NewItemRepository().DeleteByID(context.Background(), uuid.New())
	if !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemRepository_RejectsInvalid(t *testing.T) {
	repo := NewItemRepository()
	err := repo.Save(context.Background(), &models.Item{ID: uuid.New(), Name: "X", Quantity: -1})
	if !errors.Is(err, itemdomain.ErrItemValidation) {
		t.Fatalf("expected ErrItemValidation, got %v", err)
	}
	items, _ := repo.List(context.Background())
	if len(items) != 0 {
		t.Fatalf("invalid item was stored: %+v", items)
	}
}

func TestItemRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	_ = repo.Save(ctx, models.NewItem("Milk", 1, 4))

	items, _ := repo.List(ctx)
	items[0].Quantity = 99

	again, _ := repo.List(ctx)
	if again[0].Quantity != 1 {
		t.Fatalf("stored item was mutated through List result: %v", again[0].Quantity)
	}
}

func TestItemRepository_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, models.NewItem("Egg", 12, 0.8))
		}()
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	if len(items) != 50 {
		t.Fatalf("expected 50 items, got %d", len(items))
	}
}
