package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderItems prints items as a table followed by their total weight.
func renderItems(w io.Writer, items []model.GearItem, total decimal.Decimal) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		packed := ""
		if it.Checked {
			packed = "✔"
		}
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Category,
			it.Name,
			strconv.Itoa(it.Quantity),
			it.Weight.StringFixed(2),
			packed,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Category", "Name", "Quantity", "Weight", "Packed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == 3 || col == 4:
				return numberStyle
			default:
				return cellStyle
			}
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Total Weight: %s kg\n", total.StringFixed(2))
}

func renderItem(w io.Writer, verb string, it model.GearItem) {
	fmt.Fprintf(w, "%s #%d %s (%s) x%d at %s kg\n",
		verb, it.ID, it.Name, it.Category, it.Quantity, it.Weight.StringFixed(2))
}
