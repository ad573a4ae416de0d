package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"athletic-store/internal/seed"

	"github.com/spf13/cobra"
)

var sampleDir string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write sample product, collection and athlete seed files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := seed.WriteSamples(sampleDir)
		if err != nil {
			return err
		}

		var b strings.Builder
		for _, p := range paths {
			fmt.Fprintf(&b, "created %s (seed with --collection %s)\n", p, seed.SampleFiles[filepath.Base(p)])
		}
		return printResult(cmd.OutOrStdout(), paths, b.String())
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleDir, "dir", "d", "data/seed", "Directory to write the sample files into")
	rootCmd.AddCommand(sampleCmd)
}
