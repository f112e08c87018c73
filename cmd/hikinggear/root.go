package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Bankableflunky5/HikingApp/internal/config"
	"github.com/Bankableflunky5/HikingApp/internal/inventory"
	"github.com/Bankableflunky5/HikingApp/internal/store"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configDir string
	dbPath    string
	logPath   string
	verbose   bool

	settings *config.Settings
	engine   *inventory.Engine
	closeLog func()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hikinggear",
		Short: "Track hiking gear, pack weight and a packing checklist",
		Long: `hikinggear keeps an inventory of hiking gear in a SQLite database.

It totals pack weight, groups it by category, compares it against a
bodyweight limit, keeps a packing checklist, and exports CSV reports and
bar charts.

The database in use is remembered between runs; select one with
"hikinggear db use <path>" or create one with "hikinggear db new <path>".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding config.txt and settings.yaml (default: user config dir)")
	root.PersistentFlags().StringVarP(&a.dbPath, "db", "d", "", "gear database to use instead of the remembered one")
	root.PersistentFlags().StringVarP(&a.logPath, "log", "l", "", "also write logs to this file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		newAddCmd(a),
		newEditCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newTotalCmd(a),
		newChecklistCmd(a),
		newExportCmd(a),
		newChartCmd(a),
		newDBCmd(a),
	)
	return root
}

// setup loads settings and configures logging. The database is opened lazily
// by the commands that need it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configDir == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		a.configDir = dir
	}

	settings, err := config.LoadSettings(a.configDir)
	if err != nil {
		return err
	}
	a.settings = settings

	logPath := a.logPath
	if logPath == "" {
		logPath = settings.LogFile
	}
	closeLog, err := setupLogger(logPath, a.verbose)
	if err != nil {
		return err
	}
	a.closeLog = closeLog

	slog.Debug("settings loaded", "dir", a.configDir, "max_load_fraction", settings.MaxLoadFraction)
	return nil
}

// open returns the engine over the database given by --db or the pointer file.
func (a *app) open() (*inventory.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	path := a.dbPath
	if path == "" {
		p, err := config.LoadPointer(a.configDir)
		if errors.Is(err, config.ErrNoDatabase) {
			return nil, fmt.Errorf("%w: run \"hikinggear db new <path>\" or \"hikinggear db use <path>\", or pass --db", err)
		}
		if err != nil {
			return nil, err
		}
		path = p
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	a.engine = inventory.New(s, inventory.WithMaxLoadFraction(a.settings.MaxLoadFraction))
	return a.engine, nil
}

// switchTo opens path, makes it the active database and remembers it for
// later runs.
func (a *app) switchTo(path string) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}

	if a.engine == nil {
		a.engine = inventory.New(s, inventory.WithMaxLoadFraction(a.settings.MaxLoadFraction))
	} else if prev := a.engine.Use(s); prev != nil {
		if err := prev.Close(); err != nil {
			slog.Warn("closing previous database", "error", err)
		}
	}

	return config.SavePointer(a.configDir, path)
}

func (a *app) close() {
	if a.engine != nil {
		if err := a.engine.Store().Close(); err != nil {
			slog.Warn("closing database", "error", err)
		}
		a.engine = nil
	}
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
