package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/orcamento/pkg/database"
	"github.com/ghuser/orcamento/pkg/events"
	itemdomain "github.com/ghuser/orcamento/services/item/domain"
	domainevents "github.com/ghuser/orcamento/services/item/domain/events"
	"github.com/ghuser/orcamento/services/item/domain/models"
	"github.com/ghuser/orcamento/services/item/infrastructure/persistence/postgres/db"
)

// SQLSTATE codes mapped to domain errors.
const (
	pgCheckViolation   = "23514"
	pgNotNullViolation = "23502"
)

// column → JSON field name, for constraint violations reported by Postgres.
var columnFields = map[string]string{
	"name":       "name",
	"quantity":   "quantity",
	"unit_value": "unitValue",
}

// constraint → JSON field name, for CHECK violations (which carry no column).
var constraintFields = map[string]string{
	"items_name_not_blank":          "name",
	"items_quantity_non_negative":   "quantity",
	"items_unit_value_non_negative": "unitValue",
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish item events inside the write
// transaction; a nil bus disables publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
// A CHECK or NOT NULL violation is returned as a *domain.ValidationError.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertItem(ctx, db.InsertItemParams{
			ID:        item.ID,
			Name:      item.Name.String(),
			Quantity:  item.Quantity,
			UnitValue: item.UnitValue,
			CreatedAt: item.CreatedAt,
		}); err != nil {
			if verr := constraintError(err); verr != nil {
				return verr
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			evt := domainevents.NewItemCreatedEvent(item)
			if err := r.publish(ctx, tx, domainevents.TopicItemCreated, evt.EventID, evt.Version, evt); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// List returns every item ordered by creation time.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// DeleteByID removes the item with the given ID and returns it.
// Returns ErrItemNotFound if no row matched.
func (r *ItemRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var deleted *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).DeleteItem(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return itemdomain.ErrItemNotFound
			}
			return fmt.Errorf("delete item: %w", err)
		}
		deleted = rowToItem(row)

		if r.bus != nil {
			evt := domainevents.NewItemDeletedEvent(deleted)
			if err := r.publish(ctx, tx, domainevents.TopicItemDeleted, evt.EventID, evt.Version, evt); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, version int, event any) error {
	msg, err := events.NewMessage(ctx, eventID.String(), version, event)
	if err != nil {
		return err
	}
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// constraintError converts a Postgres constraint violation into a
// *domain.ValidationError, or returns nil for any other error.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Code != pgCheckViolation && pgErr.Code != pgNotNullViolation {
		return nil
	}

	field, ok := constraintFields[pgErr.ConstraintName]
	if !ok {
		field, ok = columnFields[pgErr.ColumnName]
	}
	if !ok {
		field = "item"
	}
	return itemdomain.NewValidationError(map[string]string{field: pgErr.Message})
}

// rowToItem maps a db.ItemItem to a domain models.Item.
func rowToItem(row db.ItemItem) *models.Item {
	return &models.Item{
		ID:        row.ID,
		Name:      models.ItemName(row.Name),
		Quantity:  row.Quantity,
		UnitValue: row.UnitValue,
		CreatedAt: row.CreatedAt,
	}
}
