package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/codes"
	"github.com/kruttikastudy/icd-website/internal/importer"
)

func newImportCommand() *cobra.Command {
	var (
		configPath string
		batchSize  int
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk load ICD codes from a CSV file with a header row",
		Long: "Bulk load ICD codes from a CSV file. Header names must match existing\n" +
			"columns of the codes table and a code column is required. Rows whose\n" +
			"code already exists are skipped. No audit entries are written.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)

			icfg, err := importer.LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags override config.
			if cmd.Flags().Changed("batch-size") {
				if batchSize <= 0 {
					return fmt.Errorf("--batch-size must be positive")
				}
				icfg.BatchSize = batchSize
			}
			if dryRun {
				icfg.DryRun = true
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			e, err := connect(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			res, err := importer.New(codes.New(e.pool), *icfg, e.log).Run(ctx, f)
			if err != nil {
				return err
			}

			e.log.InfoContext(ctx, "import completed",
				slog.String("file", args[0]),
				slog.Bool("dry_run", res.DryRun),
				slog.Int("rows", res.Stats.Rows),
				slog.Int("skipped", res.Stats.Skipped),
				slog.Int("inserted", res.Inserted),
				slog.Int("existing", res.Existing),
				slog.Int("batches", res.Batches),
				slog.Duration("elapsed", res.Elapsed),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "parsed %d rows, inserted %d, existing %d, skipped %d\n",
				res.Stats.Parsed, res.Inserted, res.Existing, res.Stats.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "import-config", "", "Path to an import YAML config file")
	cmd.Flags().IntVar(&batchSize, "batch-size", 500, "Rows per insert batch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and validate without writing")
	return cmd
}
