package inventory

import (
	"context"
	"log/slog"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

// ChecklistRows is how many entries one checklist column holds.
const ChecklistRows = 15

// Checklist is the packed state of every distinct item name, in the order the
// names were first added.
type Checklist struct {
	Entries []model.ChecklistEntry
}

// Columns returns how many columns of ChecklistRows the entries fill.
func (c Checklist) Columns() int {
	return (len(c.Entries) + ChecklistRows - 1) / ChecklistRows
}

// Position returns the row and column of entry i.
func (c Checklist) Position(i int) (row, col int) {
	return i % ChecklistRows, i / ChecklistRows
}

// Checked reports the state of name and whether it is on the list.
func (c Checklist) Checked(name string) (checked, ok bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e.Checked, true
		}
	}
	return false, false
}

// Set changes the state of name. Unknown names are added at the end.
func (c *Checklist) Set(name string, checked bool) {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			c.Entries[i].Checked = checked
			return
		}
	}
	c.Entries = append(c.Entries, model.ChecklistEntry{Name: name, Checked: checked})
}

// ChecklistSnapshot reads the checklist from the store. Items sharing a name
// collapse into one entry at the first one's position, carrying the state of
// the last one.
func (e *Engine) ChecklistSnapshot(ctx context.Context) (Checklist, error) {
	rows, err := e.store.Checklist(ctx)
	if err != nil {
		return Checklist{}, err
	}

	var c Checklist
	for _, r := range rows {
		c.Set(r.Name, r.Checked)
	}
	return c, nil
}

// SaveChecklist writes every entry back, setting the flag of all items with
// that name. The writes share one transaction, so a failure leaves the
// stored checklist as it was.
func (e *Engine) SaveChecklist(ctx context.Context, c Checklist) error {
	if err := e.store.SetCheckedAll(ctx, c.Entries); err != nil {
		return err
	}
	slog.Debug("saved checklist", "entries", len(c.Entries))
	return nil
}
