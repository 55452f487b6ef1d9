package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertItem = `
INSERT INTO item.items (id, name, quantity, unit_value, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type InsertItemParams struct {
	ID        uuid.UUID
	Name      string
	Quantity  float64
	UnitValue float64
	CreatedAt time.Time
}

func (q *Queries) InsertItem(ctx context.Context, arg InsertItemParams) error {
	_, err := q.db.ExecContext(ctx, insertItem,
		arg.ID,
		arg.Name,
		arg.Quantity,
		arg.UnitValue,
		arg.CreatedAt,
	)
	return err
}

const listItems = `
SELECT id, name, quantity, unit_value, created_at
FROM item.items
ORDER BY created_at, id
`

func (q *Queries) ListItems(ctx context.Context) ([]ItemItem, error) {
	rows, err := q.db.QueryContext(ctx, listItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	items := []ItemItem{}
	for rows.Next() {
		var i ItemItem
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Quantity,
			&i.UnitValue,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteItem = `
DELETE FROM item.items
WHERE id = $1
RETURNING id, name, quantity, unit_value, created_at
`

func (q *Queries) DeleteItem(ctx context.Context, id uuid.UUID) (ItemItem, error) {
	row := q.db.QueryRowContext(ctx, deleteItem, id)
	var i ItemItem
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Quantity,
		&i.UnitValue,
		&i.CreatedAt,
	)
	return i, err
}
