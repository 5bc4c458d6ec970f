package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/notebook"
	"github.com/xaenox/memo-notes/internal/storage"
	"github.com/xaenox/memo-notes/pkg/config"
)

// app holds what every subcommand shares once the root has run.
type app struct {
	configPath string
	verbose    bool
	jsonOut    bool

	cfg    *config.Config
	logger *zap.Logger
	store  storage.Storage
	nb     *notebook.Notebook
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "Local notes, checklists and categories",
		Long: `notes keeps notes, checklists, categories, favorites and a trash bin
in a key-value store (SQLite, PostgreSQL, Redis or memory). The same store
can be served over HTTP (notes serve) or Telegram (notes bot).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output in JSON format")

	root.AddCommand(
		newNoteCmd(a),
		newTrashCmd(a),
		newFavoritesCmd(a),
		newCategoryCmd(a),
		newChecklistCmd(a),
		newColorCmd(a),
		newExportCmd(a),
		newServeCmd(a),
		newBotCmd(a),
	)
	return root
}

// needsNotebook is false for help, shell completion and bare command groups,
// which must not open (and so create) the store.
func needsNotebook(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return cmd.Runnable()
}

func longRunning(cmd *cobra.Command) bool {
	return cmd.Name() == "serve" || cmd.Name() == "bot"
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !needsNotebook(cmd) {
		return nil
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		if longRunning(cmd) {
			if logger, lerr := zap.NewProduction(); lerr == nil {
				logger.Error("Failed to load config", zap.Error(err), zap.String("path", a.configPath))
				_ = logger.Sync()
			}
		}
		return err
	}

	logCfg := cfg.Log
	if a.verbose {
		logCfg.Level = "debug"
		logCfg.Development = true
	} else if !longRunning(cmd) {
		// Keep one-shot commands quiet on stderr.
		logCfg.Level = "warn"
	}
	logger, err := logCfg.NewLogger()
	if err != nil {
		return err
	}

	store, err := storage.Open(cmd.Context(), cfg.StorageBackend(), logger)
	if err != nil {
		logger.Error("Failed to initialize storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
		_ = logger.Sync()
		return fmt.Errorf("open storage: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.nb = notebook.New(store, notebook.WithLogger(logger))
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("Failed to close storage", zap.Error(err))
		}
		a.store = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// render writes v as indented JSON under --json, otherwise calls plain.
func (a *app) render(cmd *cobra.Command, v any, plain func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	plain(w)
	return nil
}
