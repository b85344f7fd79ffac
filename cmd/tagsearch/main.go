package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/launch"
	"github.com/nikbrunner/tagsearch/internal/logging"
	"github.com/nikbrunner/tagsearch/internal/storage"
	"github.com/nikbrunner/tagsearch/internal/tui"
)

var (
	// Global flags
	configPath string
	verbose    bool
	ephemeral  bool

	logger *zap.Logger
	store  storage.Store
	ctrl   *controller.Controller
)

var rootCmd = &cobra.Command{
	Use:   "tagsearch [query...]",
	Short: "Save web searches under short tags and launch them",
	Long: `tagsearch keeps a list of search queries saved under short tags.

Run without arguments to open the interactive list. With arguments, the
tags are fuzzy matched against the query and the chosen search is opened
in the browser.

Data is stored in ~/.config/tagsearch unless --config points elsewhere.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runQuickSearch(cmd.OutOrStdout(), ctrl, launch.System{}, strings.Join(args, " "), pickWithTUI)
		}
		return runTUI()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print saved tags and their search URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), ctrl)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <tag> <query...>",
	Short: "Save a query under a tag",
	Long: `Save a query under a tag. Saving to an existing tag overwrites its query;
a tag differing only in case replaces the old spelling.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd.OutOrStdout(), ctrl, args[0], strings.Join(args[1:], " "))
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <tag>",
	Aliases: []string{"delete"},
	Short:   "Delete the search saved under a tag",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(cmd.OutOrStdout(), ctrl, args[0])
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export searches as a Netscape bookmark file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runExport(cmd.OutOrStdout(), ctrl, path)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import searches from a Netscape bookmark file",
	Long: `Import searches from a Netscape bookmark file. Only bookmarks whose URL
starts with the configured search URL are imported; the bookmark title
becomes the tag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.OutOrStdout(), ctrl, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/tagsearch/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep searches in memory only")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, builds the logger and opens the store.
// Data files live next to the config file.
func setup(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		var err error
		configPath, err = storage.DefaultConfigFilePath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
	}
	dir := filepath.Dir(configPath)

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ephemeral {
		cfg.Backend = storage.BackendMemory
	}

	logger, err = logging.New(logging.DefaultLogPath(dir), verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg.Backend = storage.ResolveBackend(dir, *cfg)
	s, err := storage.Open(dir, *cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	store = s

	logger.Info("Store opened",
		zap.String("command", cmd.Name()),
		zap.String("backend", cfg.Backend),
		zap.String("namespace", cfg.Namespace))

	ctrl = controller.New(controller.Params{
		Store:    store,
		Settings: settingsFrom(*cfg),
		Logger:   logger,
	})
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if store != nil {
		if err := store.Close(); err != nil && logger != nil {
			logger.Warn("Closing store failed", zap.Error(err))
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// settingsFrom picks the strings the list rules need out of the config.
func settingsFrom(cfg storage.Config) controller.Settings {
	return controller.Settings{
		SearchURL:    cfg.SearchURL,
		ShareSubject: cfg.ShareSubject,
		ShareMessage: cfg.ShareMessage,
	}
}

// runTUI runs the full interactive list.
func runTUI() error {
	app := tui.NewApp(tui.AppParams{
		Controller: ctrl,
		Launcher:   launch.System{},
		Logger:     logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
