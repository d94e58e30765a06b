// Package main provides the entry point for the resume studio CLI and server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/config"
	"github.com/marcela/resume-studio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio document editor and server",
	Long:  "Resume Studio manages structured resume documents: sectioned editing, validation, HTML preview and PDF export, with a local file store or PostgreSQL behind a REST API.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (when given) over environment values and
// fills remaining defaults.
func loadConfig() (config.Config, error) {
	env := config.FromEnv()

	merged := env.MergeWithDefaults(config.Config{})
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = fileCfg.MergeWithDefaults(env)
	}
	if merged.OwnerID == "" {
		merged.OwnerID = "local"
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openStore builds the persistence adapter the configuration selects. The
// returned cleanup is safe to call once.
func openStore(ctx context.Context, cfg config.Config) (store.Store, store.UserStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, nil, nil, fmt.Errorf("failed to prepare database schema: %w", err)
		}
		return pg, pg, pg.Close, nil
	}

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	return fs, fs, func() {}, nil
}
