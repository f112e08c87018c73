// Package report exports the inventory as a flat table.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

// Header is the first CSV row.
var Header = []string{"ID", "Name", "Category", "Quantity", "Weight (kg)"}

// TotalLabel marks the trailing total row.
const TotalLabel = "Total Weight"

// Source is the read side of the inventory the exporter needs.
type Source interface {
	ListByID(ctx context.Context) ([]model.GearItem, error)
	TotalWeight(ctx context.Context) (decimal.Decimal, error)
}

// Export returns one row per item in insertion order, followed by a total
// row. Weights have two decimals.
func Export(ctx context.Context, src Source) ([][]string, error) {
	items, err := src.ListByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	total, err := src.TotalWeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading total weight: %w", err)
	}

	rows := make([][]string, 0, len(items)+1)
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			it.Category,
			strconv.Itoa(it.Quantity),
			it.Weight.StringFixed(2),
		})
	}
	rows = append(rows, []string{TotalLabel, "", "", "", total.StringFixed(2)})
	return rows, nil
}

// WriteCSV writes the header and the exported rows to w.
func WriteCSV(ctx context.Context, w io.Writer, src Source) error {
	rows, err := Export(ctx, src)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}

// ExportFile writes the CSV report to path, replacing any existing file.
func ExportFile(ctx context.Context, path string, src Source) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()

	if err := WriteCSV(ctx, f, src); err != nil {
		return err
	}
	slog.Info("exported report", "path", path)
	return nil
}
