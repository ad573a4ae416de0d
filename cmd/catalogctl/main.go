// catalogctl is the operator CLI for the athletic-store catalog: seeding,
// sample seed files and store connectivity checks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"athletic-store/internal/config"
	"athletic-store/internal/repository"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl manages the athletic-store catalog",
	Long: `catalogctl seeds catalog collections from gzipped JSON-lines files,
writes sample seed files and checks document store connectivity.

The store is selected by DATABASE_URL (mongodb:// or postgres://) and
DATABASE_NAME, read from the environment or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadEnv reads configuration and builds the command logger.
func loadEnv() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	if !verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return cfg, logger, nil
}

// openStore opens the configured document store.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.DocumentRepository, error) {
	repo, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return repo, nil
}

// printResult writes v as indented JSON when --json is set, otherwise text.
func printResult(w io.Writer, v any, text string) error {
	if jsonOutput {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprint(w, text)
	return err
}
