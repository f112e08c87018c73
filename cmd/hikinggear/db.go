package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Bankableflunky5/HikingApp/internal/config"
)

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Select or create the gear database",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "use <path>",
			Short: "Switch to an existing gear database",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("selecting database: %w", err)
				}
				if err := a.switchTo(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "using %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "new <path>",
			Short: "Create a gear database and switch to it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("database file %s already exists", path)
				}
				if err := a.switchTo(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the remembered database path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.LoadPointer(a.configDir)
				if errors.Is(err, config.ErrNoDatabase) {
					fmt.Fprintln(cmd.OutOrStdout(), "no database selected")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
	)
	return cmd
}
