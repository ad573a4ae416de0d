package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var pingTimeout time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the document store is reachable and list its collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		cfg, logger, err := loadEnv()
		if err != nil {
			return err
		}

		repo, err := openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer repo.Close(context.Background())

		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("document store is not reachable: %w", err)
		}

		names, err := repo.ListCollectionNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}

		type pingResult struct {
			Database    string   `json:"database"`
			Collections []string `json:"collections"`
		}
		result := pingResult{Database: repo.Name(), Collections: names}
		if result.Collections == nil {
			result.Collections = []string{}
		}

		text := fmt.Sprintf("connected to %s\ncollections: %s\n", result.Database, strings.Join(result.Collections, ", "))
		return printResult(cmd.OutOrStdout(), result, text)
	},
}

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 10*time.Second, "Maximum time to wait for the store")
	rootCmd.AddCommand(pingCmd)
}
