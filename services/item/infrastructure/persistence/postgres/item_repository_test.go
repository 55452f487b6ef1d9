package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	itemmigrations "github.com/ghuser/orcamento/migrations/item"
	"github.com/ghuser/orcamento/pkg/database"
	"github.com/ghuser/orcamento/pkg/logger"
	"github.com/ghuser/orcamento/pkg/migrator"
	itemdomain "github.com/ghuser/orcamento/services/item/domain"
	"github.com/ghuser/orcamento/services/item/domain/models"
)

func TestConstraintError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
	}{
		{"check by constraint", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "items_quantity_non_negative", Message: "violates check"}, "quantity"},
		{"check unit value", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "items_unit_value_non_negative"}, "unitValue"},
		{"not null by column", &pgconn.PgError{Code: pgNotNullViolation, ColumnName: "name"}, "name"},
		{"unknown constraint", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "other"}, "item"},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "items_name_not_blank"}), "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := constraintError(tt.err)
			var verr *itemdomain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("expected field %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestConstraintError_OtherErrors(t *testing.T) {
	for _, err := range []error{
		errors.New("connection reset"),
		&pgconn.PgError{Code: "23505"},
	} {
		if got := constraintError(err); got != nil {
			t.Errorf("constraintError(%v) = %v, want nil", err, got)
		}
	}
}

// newIntegrationRepo connects to DATABASE_URL, applies migrations, and
// empties the items table. Skips when DATABASE_URL is unset.
func newIntegrationRepo(t *testing.T) (*ItemRepository, *database.Database) {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, url, logger.Discard())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	if err := migrator.Up(pool.DB(), itemmigrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.DB().ExecContext(ctx, "TRUNCATE item.items"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewItemRepository(pool, nil), pool
}

func TestItemRepository_Integration(t *testing.T) {
	repo, _ := newIntegrationRepo(t)
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", items)
	}

	first := models.NewItem(models.ItemName("Arroz"), 2, 10)
	second := models.NewItem(models.ItemName("Feijão"), 1, 8.5)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	for _, it := range []*models.Item{first, second} {
		if err := repo.Save(ctx, it); err != nil {
			t.Fatalf("save %s: %v", it.Name, err)
		}
	}

	items, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("unexpected order: %v, %v", items[0].ID, items[1].ID)
	}
	if items[1].Name != "Feijão" || items[1].UnitValue != 8.5 {
		t.Errorf("unexpected row: %+v", items[1])
	}

	deleted, err := repo.DeleteByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != first.ID || deleted.Quantity != 2 {
		t.Errorf("unexpected deleted item: %+v", deleted)
	}

	if _, err := repo.DeleteByID(ctx, first.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("second delete: expected ErrItemNotFound, got %v", err)
	}
	if _, err := repo.DeleteByID(ctx, uuid.New()); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("unknown id: expected ErrItemNotFound, got %v", err)
	}
}

func TestItemRepository_Integration_CheckViolation(t *testing.T) {
	repo, _ := newIntegrationRepo(t)
	ctx := context.Background()

	// Bypasses the domain validator to exercise the table constraint.
	bad := models.NewItem(models.ItemName("Leite"), -1, 4)
	err := repo.Save(ctx, bad)

	var verr *itemdomain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["quantity"]; !ok {
		t.Errorf("expected quantity field error, got %v", verr.Fields)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected nothing persisted, got %d items", len(items))
	}
}
