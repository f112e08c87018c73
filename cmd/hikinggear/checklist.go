package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Bankableflunky5/HikingApp/internal/tui"
)

func newChecklistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Open the interactive packing checklist",
		Long: `Open the interactive packing checklist. Entries are laid out in columns of
15; space toggles an entry, s saves, q exits without saving.

Items sharing a name share one checklist entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			ctx := ctxOf(cmd)
			snap, err := e.ChecklistSnapshot(ctx)
			if err != nil {
				return err
			}
			return tui.Run(ctx, e, snap)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the checklist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				e, err := a.open()
				if err != nil {
					return err
				}
				snap, err := e.ChecklistSnapshot(ctxOf(cmd))
				if err != nil {
					return err
				}
				for _, entry := range snap.Entries {
					box := "[ ]"
					if entry.Checked {
						box = "[x]"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", box, entry.Name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <name> <true|false>",
			Short: "Mark every item with this name packed or unpacked",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				checked, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("parsing checked state %q: %w", args[1], err)
				}
				e, err := a.open()
				if err != nil {
					return err
				}
				ctx := ctxOf(cmd)

				snap, err := e.ChecklistSnapshot(ctx)
				if err != nil {
					return err
				}
				if _, ok := snap.Checked(args[0]); !ok {
					return fmt.Errorf("no gear item named %q", args[0])
				}
				snap.Set(args[0], checked)
				return e.SaveChecklist(ctx, snap)
			},
		},
	)
	return cmd
}
