package store

import (
	"context"
	"database/sql"
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

const gearColumns = `id, name, category, quantity, weight, checked`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGear(sc scanner) (model.GearItem, error) {
	var item model.GearItem
	var weight float64
	if err := sc.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &weight, &item.Checked); err != nil {
		return model.GearItem{}, err
	}
	item.Weight = decimal.NewFromFloat(weight)
	return item, nil
}

// Insert stores a new gear item, unchecked, and returns its id.
func (s *Store) Insert(ctx context.Context, f model.GearFields) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO hiking_gear (name, category, quantity, weight, checked) VALUES (?, ?, ?, ?, 0)`,
		f.Name, f.Category, f.Quantity, f.Weight.InexactFloat64(),
	)
	if err != nil {
		return 0, storageErr("inserting gear item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("getting gear item id", err)
	}
	return id, nil
}

// Get returns a gear item by ID.
func (s *Store) Get(ctx context.Context, id int64) (model.GearItem, error) {
	item, err := scanGear(s.db.QueryRowContext(ctx,
		`SELECT `+gearColumns+` FROM hiking_gear WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return model.GearItem{}, &model.NotFoundError{ID: id}
	}
	if err != nil {
		return model.GearItem{}, storageErr("getting gear item", err)
	}
	return item, nil
}

// Update overwrites the editable fields of an item. The checked flag is left
// alone.
func (s *Store) Update(ctx context.Context, id int64, f model.GearFields) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE hiking_gear SET name = ?, category = ?, quantity = ?, weight = ? WHERE id = ?`,
		f.Name, f.Category, f.Quantity, f.Weight.InexactFloat64(), id,
	)
	if err != nil {
		return storageErr("updating gear item", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return storageErr("updating gear item", err)
	}
	if n == 0 {
		return &model.NotFoundError{ID: id}
	}
	return nil
}

// Delete removes an item. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM hiking_gear WHERE id = ?`, id)
	if err != nil {
		return storageErr("deleting gear item", err)
	}
	return nil
}

// ListAll returns every item. Unsorted lists by category; the weight modes
// order by unit weight. Ties fall back to id.
func (s *Store) ListAll(ctx context.Context, mode model.SortMode) ([]model.GearItem, error) {
	var order string
	switch mode {
	case model.WeightAsc:
		order = `weight ASC, id`
	case model.WeightDesc:
		order = `weight DESC, id`
	default:
		order = `category, id`
	}
	return s.list(ctx, `SELECT `+gearColumns+` FROM hiking_gear ORDER BY `+order)
}

// ListByID returns every item in insertion order.
func (s *Store) ListByID(ctx context.Context) ([]model.GearItem, error) {
	return s.list(ctx, `SELECT `+gearColumns+` FROM hiking_gear ORDER BY id`)
}

func (s *Store) list(ctx context.Context, query string) ([]model.GearItem, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("listing gear", err)
	}
	defer rows.Close()

	var items []model.GearItem
	for rows.Next() {
		item, err := scanGear(rows)
		if err != nil {
			return nil, storageErr("scanning gear item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing gear", err)
	}
	return items, nil
}

// Search matches term case-insensitively against name, category and the
// decimal text of quantity. Case is folded in Go, so non-ASCII letters match
// too. The query runs when the sequence is ranged over and holds the
// connection until the loop ends, so the loop body must not call back into
// the store. Ranging again reruns the query.
func (s *Store) Search(ctx context.Context, term string) iter.Seq2[model.GearItem, error] {
	needle := strings.ToLower(term)

	return func(yield func(model.GearItem, error) bool) {
		rows, err := s.db.QueryContext(ctx,
			`SELECT `+gearColumns+` FROM hiking_gear ORDER BY id`,
		)
		if err != nil {
			yield(model.GearItem{}, storageErr("searching gear", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scanGear(rows)
			if err != nil {
				yield(model.GearItem{}, storageErr("scanning gear item", err))
				return
			}
			if !matches(item, needle) {
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.GearItem{}, storageErr("searching gear", err))
		}
	}
}

// matches reports whether needle, already lower-cased, occurs in the item's
// name, category or quantity.
func matches(item model.GearItem, needle string) bool {
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Category), needle) ||
		strings.Contains(strconv.Itoa(item.Quantity), needle)
}
