package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bankableflunky5/HikingApp/internal/chart"
	"github.com/Bankableflunky5/HikingApp/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export the inventory and its total weight as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			if err := report.ExportFile(ctxOf(cmd), args[0], e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report exported to %s\n", args[0])
			return nil
		},
	}
}

func newChartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw bar charts of the inventory as PNG",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "category <file.png>",
			Short: "Weight carried per category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open()
				if err != nil {
					return err
				}
				weights, err := e.AggregateByCategory(ctxOf(cmd))
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := chart.CategoryChart(&buf, weights); err != nil {
					return err
				}
				return writeChart(cmd, args[0], buf.Bytes())
			},
		},
		&cobra.Command{
			Use:   "name <file.png>",
			Short: "Quantity held per item name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open()
				if err != nil {
					return err
				}
				quantities, err := e.AggregateByName(ctxOf(cmd))
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := chart.NameChart(&buf, quantities); err != nil {
					return err
				}
				return writeChart(cmd, args[0], buf.Bytes())
			},
		},
	)
	return cmd
}

// writeChart only touches path once the image rendered.
func writeChart(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", path)
	return nil
}
