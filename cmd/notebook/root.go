package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook"
	"github.com/aretw0/notebook/internal/config"
)

var (
	verbose    bool
	configFile string
	dbPath     string
	backend    string
	outFormat  string
	table      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Store notes in a JSON document collection and search them",
	Long: `notebook keeps title/content/tag notes in a JSON collection file (or SQLite)
and renders search results as terminal text, JSON or YAML.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./notebook.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path of the store file")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Store backend (json, sqlite)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "", "Output format (terminal, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&table, "table", "", "Table inside a JSON collection file")
}

// openNotebook merges config file, environment and flags, then opens the notebook.
// Flags win over the environment, which wins over the config file.
func openNotebook(mustExist bool) (*notebook.Notebook, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if dbPath != "" {
		cfg.Path = dbPath
	} else if _, statErr := os.Stat(cfg.Path); os.IsNotExist(statErr) {
		// Fall back to a collection file in a parent directory.
		if found, err := notebook.FindStore(".", cfg.Path); err == nil {
			cfg.Path = found
		}
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if outFormat != "" {
		cfg.Format = outFormat
	}
	if table != "" {
		cfg.Table = table
	}

	slog.Debug("opening notebook", "path", cfg.Path, "backend", cfg.Backend, "format", cfg.Format)

	return notebook.New(cfg.Path,
		notebook.WithBackend(cfg.Backend),
		notebook.WithFormat(cfg.Format),
		notebook.WithTable(cfg.Table),
		notebook.WithMustExist(mustExist),
		notebook.WithLogger(slog.Default()),
	)
}
