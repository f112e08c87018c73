package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Bankableflunky5/HikingApp/internal/inventory"
	"github.com/Bankableflunky5/HikingApp/internal/model"
)

func itemFlags(cmd *cobra.Command, raw *inventory.RawItem) {
	cmd.Flags().StringVarP(&raw.Name, "name", "n", "", "item name")
	cmd.Flags().StringVarP(&raw.Category, "category", "c", "", "category, e.g. Shelter")
	cmd.Flags().StringVarP(&raw.Quantity, "quantity", "q", "", "number of units")
	cmd.Flags().StringVarP(&raw.Weight, "weight", "w", "", "weight of one unit in kg")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return id, nil
}

func newAddCmd(a *app) *cobra.Command {
	var raw inventory.RawItem
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a gear item",
		Example: `  hikinggear add --name Tent --category Shelter --quantity 1 --weight 2.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			item, err := e.AddItem(ctxOf(cmd), raw)
			if err != nil {
				return err
			}
			renderItem(cmd.OutOrStdout(), "added", item)
			return nil
		},
	}
	itemFlags(cmd, &raw)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var raw inventory.RawItem
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a gear item; flags left out keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := a.open()
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)

			cur, err := e.Store().Get(ctx, id)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				raw.Name = cur.Name
			}
			if !cmd.Flags().Changed("category") {
				raw.Category = cur.Category
			}
			if !cmd.Flags().Changed("quantity") {
				raw.Quantity = strconv.Itoa(cur.Quantity)
			}
			if !cmd.Flags().Changed("weight") {
				raw.Weight = cur.Weight.String()
			}

			item, err := e.EditItem(ctx, id, raw)
			if err != nil {
				return err
			}
			renderItem(cmd.OutOrStdout(), "updated", item)
			return nil
		},
	}
	itemFlags(cmd, &raw)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove gear items",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				if err := e.RemoveItem(ctxOf(cmd), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed #%d\n", id)
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var sortFlag string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all gear",
		Long: `List all gear. By default items are grouped by category; --sort asc or
--sort desc orders them by unit weight instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := model.ParseSortMode(sortFlag)
			if err != nil {
				return err
			}
			e, err := a.open()
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)

			items, err := e.SortedView(ctx, mode)
			if err != nil {
				return err
			}
			total, err := e.TotalWeight(ctx)
			if err != nil {
				return err
			}
			renderItems(cmd.OutOrStdout(), items, total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "unsorted", "order: unsorted, asc or desc")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find gear by name, category or quantity",
		Long: `Find gear whose name, category or quantity contains term, ignoring case.
The total shown covers the matching items only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			v, err := e.SearchView(ctxOf(cmd), term)
			if err != nil {
				return err
			}
			renderItems(cmd.OutOrStdout(), v.Items, v.Total)
			return nil
		},
	}
}

func newTotalCmd(a *app) *cobra.Command {
	var bodyweight float64
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show pack weight, optionally against a bodyweight limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("bodyweight") {
				total, err := e.TotalWeight(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Total Weight: %s kg\n", total.StringFixed(2))
				return nil
			}

			st, err := e.WeightStatus(ctx, bodyweight)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Total Weight: %s kg\n", st.Total.StringFixed(2))
			fmt.Fprintf(out, "Maximum Weight: %s kg\n", st.Limit.StringFixed(2))
			if st.Over() {
				fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("over the limit by %s kg", st.Remaining().Neg().StringFixed(2))))
			} else {
				fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("%s kg to spare", st.Remaining().StringFixed(2))))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&bodyweight, "bodyweight", "b", 0, "your bodyweight in kg")
	return cmd
}
