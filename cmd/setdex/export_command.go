package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"setdex/internal/logging"
	"setdex/internal/setdex"
	"setdex/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var gens []string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Store parsed sets in a SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			selected, err := cfg.Select(gens)
			if err != nil {
				return err
			}
			path := dbPath
			if path == "" {
				path = cfg.Paths.ExportDB
			}
			if path == "" {
				return fmt.Errorf("no export database configured; set paths.export_db or pass --db")
			}
			runCtx, logger, err := ctx.newRun(cmd, "export")
			if err != nil {
				return err
			}

			st, err := store.Open(runCtx, path)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			runID, _ := logging.RunIDFromContext(runCtx)
			for _, job := range generationJobs(cfg, selected) {
				genLogger := logger.With(logging.String(logging.FieldGeneration, job.Code))
				dex, stats, err := setdex.CollectJob(runCtx, job, genLogger)
				if errors.Is(err, setdex.ErrGenerationMissing) {
					continue
				}
				if err != nil {
					return err
				}
				stored, err := st.ReplaceGeneration(runCtx, job.Code, runID, dex)
				if err != nil {
					return fmt.Errorf("generation %s: %w", job.Code, err)
				}
				genLogger.Info("generation exported",
					logging.Int("sets", stored),
					logging.Int("discarded", stats.Discarded),
				)
			}

			summaries, err := st.Summaries(runCtx)
			if err != nil {
				return err
			}
			headers := []string{"Gen", "Subjects", "Sets"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{s.Generation, strconv.Itoa(s.Subjects), strconv.Itoa(s.Sets)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", st.Path())
			fmt.Fprintln(out, renderTable(headers, rows, aligns, nil))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&gens, "gen", "g", nil, "Generation codes to export (default: all configured)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: paths.export_db)")
	return cmd
}
