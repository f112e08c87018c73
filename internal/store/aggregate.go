package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// AggregateByCategory returns the summed weight × quantity per category.
func (s *Store) AggregateByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	err := s.eachWeight(ctx, "aggregating by category", func(category string, w decimal.Decimal) {
		totals[category] = totals[category].Add(w)
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// AggregateByName returns the summed quantity per item name.
func (s *Store) AggregateByName(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, SUM(quantity) FROM hiking_gear GROUP BY name`,
	)
	if err != nil {
		return nil, storageErr("aggregating by name", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return nil, storageErr("scanning name aggregate", err)
		}
		totals[name] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("aggregating by name", err)
	}
	return totals, nil
}

// TotalWeight returns the summed weight × quantity of all items, zero when
// the table is empty.
func (s *Store) TotalWeight(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.eachWeight(ctx, "totalling weight", func(_ string, w decimal.Decimal) {
		total = total.Add(w)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// eachWeight calls fn with every item's category and weight × quantity.
// Summing happens in decimal so REAL rounding doesn't leak into totals.
func (s *Store) eachWeight(ctx context.Context, op string, fn func(category string, w decimal.Decimal)) error {
	rows, err := s.db.QueryContext(ctx, `SELECT category, quantity, weight FROM hiking_gear`)
	if err != nil {
		return storageErr(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var qty int64
		var weight float64
		if err := rows.Scan(&category, &qty, &weight); err != nil {
			return storageErr(op, err)
		}
		fn(category, decimal.NewFromFloat(weight).Mul(decimal.NewFromInt(qty)))
	}
	if err := rows.Err(); err != nil {
		return storageErr(op, err)
	}
	return nil
}
