package store

import (
	"context"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

// SetChecked sets the checked flag of every item named name.
func (s *Store) SetChecked(ctx context.Context, name string, checked bool) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE hiking_gear SET checked = ? WHERE name = ?`, checked, name,
	)
	if err != nil {
		return storageErr("setting checked state", err)
	}
	return nil
}

// SetCheckedAll applies every entry in one transaction. Either all entries
// are written or none are.
func (s *Store) SetCheckedAll(ctx context.Context, entries []model.ChecklistEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning checklist transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE hiking_gear SET checked = ? WHERE name = ?`)
	if err != nil {
		return storageErr("preparing checklist update", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Checked, e.Name); err != nil {
			return storageErr("setting checked state of "+e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing checklist", err)
	}
	return nil
}

// Checklist returns the name and checked flag of every item in insertion
// order. Items sharing a name each appear.
func (s *Store) Checklist(ctx context.Context) ([]model.ChecklistEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, checked FROM hiking_gear ORDER BY id`)
	if err != nil {
		return nil, storageErr("reading checklist", err)
	}
	defer rows.Close()

	var entries []model.ChecklistEntry
	for rows.Next() {
		var e model.ChecklistEntry
		if err := rows.Scan(&e.Name, &e.Checked); err != nil {
			return nil, storageErr("scanning checklist entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading checklist", err)
	}
	return entries, nil
}
