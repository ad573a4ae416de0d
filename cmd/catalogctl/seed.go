package main

import (
	"fmt"
	"strings"

	"athletic-store/internal/config"
	"athletic-store/internal/seed"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	seedCollection string
	seedDryRun     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed --collection NAME FILE...",
	Short: "Validate gzipped JSON-lines files and insert them into a collection",
	Long: `Seed loads every FILE concurrently, validates each line against the
collection's schema and inserts the records. Nothing is inserted if any
line is invalid.

With SEED_S3_ENABLED=true each FILE is first read from
s3://$SEED_S3_BUCKET/$SEED_S3_PREFIX<FILE>, falling back to the local path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logger, err := loadEnv()
		if err != nil {
			return err
		}

		loader := newSeedLoader(cmd, cfg, logger)

		if seedDryRun {
			docs, err := seed.NewSeeder(loader, nil, logger).Prepare(ctx, seedCollection, args...)
			if err != nil {
				return err
			}
			result := &seed.Result{Collection: seedCollection, Files: len(args), IDs: []string{}}
			return printResult(cmd.OutOrStdout(), result,
				fmt.Sprintf("%d valid %s records in %d files (dry run)\n", len(docs), seedCollection, len(args)))
		}

		repo, err := openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer repo.Close(ctx)

		result, err := seed.NewSeeder(loader, repo, logger).Seed(ctx, seedCollection, args...)
		if err != nil {
			if result != nil && result.Inserted > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d records inserted before the failure\n", result.Inserted)
			}
			return err
		}

		return printResult(cmd.OutOrStdout(), result,
			fmt.Sprintf("inserted %d %s records from %s\n", result.Inserted, seedCollection, strings.Join(args, ", ")))
	},
}

func newSeedLoader(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(cmd.Context(), cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}
	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}

func init() {
	seedCmd.Flags().StringVarP(&seedCollection, "collection", "c", "", "Target collection (product, review, collection, athlete, newsletter)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate files without connecting to the store")
	_ = seedCmd.MarkFlagRequired("collection")
	rootCmd.AddCommand(seedCmd)
}
