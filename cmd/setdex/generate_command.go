package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"setdex/internal/config"
	"setdex/internal/setdex"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var gens []string
	var jsonOutput bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert every configured generation into setdex files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			selected, err := cfg.Select(gens)
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.newRun(cmd, "generate")
			if err != nil {
				return err
			}

			if !dryRun {
				lock, err := setdex.LockOutput(cfg.Paths.OutputDir)
				if err != nil {
					return err
				}
				defer func() { _ = lock.Unlock() }()
			}

			results, err := setdex.Generate(runCtx, generationJobs(cfg, selected), setdex.GenerateOptions{
				Logger: logger,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, newGenerateView(results))
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, result := range results {
				fmt.Fprintln(out, renderStatusLine(result.Job.Code, resultStatusKind(result.Status), resultMessage(result), colorize))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderSummaryTable(results))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&gens, "gen", "g", nil, "Generation codes to convert (default: all configured)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse analyses without writing setdex files")
	return cmd
}

func generationJobs(cfg *config.Config, gens []config.Generation) []setdex.Job {
	jobs := make([]setdex.Job, 0, len(gens))
	for _, gen := range gens {
		jobs = append(jobs, setdex.Job{
			Code:   gen.Code,
			Var:    gen.Var,
			Dir:    cfg.GenerationDir(gen),
			Output: cfg.OutputPath(gen),
		})
	}
	return jobs
}

func resultStatusKind(status string) statusKind {
	switch status {
	case setdex.StatusWritten:
		return statusOK
	case setdex.StatusSkipped:
		return statusWarn
	default:
		return statusInfo
	}
}

func resultMessage(result setdex.Result) string {
	switch result.Status {
	case setdex.StatusSkipped:
		return "no analyses at " + result.Job.Dir
	case setdex.StatusDryRun:
		return fmt.Sprintf("%d sets parsed, nothing written", result.Sets)
	default:
		return result.Job.Output
	}
}

func renderSummaryTable(results []setdex.Result) string {
	headers := []string{"Gen", "Var", "Status", "Files", "Skipped", "Subjects", "Sets", "Discarded", "Time"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(results))
	var files, skipped, subjects, sets, discarded int
	for _, r := range results {
		rows = append(rows, []string{
			r.Job.Code,
			r.Job.Var,
			r.Status,
			strconv.Itoa(r.Stats.Files),
			strconv.Itoa(r.Stats.Skipped),
			strconv.Itoa(r.Subjects),
			strconv.Itoa(r.Sets),
			strconv.Itoa(r.Stats.Discarded),
			r.Duration.Round(time.Millisecond).String(),
		})
		files += r.Stats.Files
		skipped += r.Stats.Skipped
		subjects += r.Subjects
		sets += r.Sets
		discarded += r.Stats.Discarded
	}
	footer := []string{"Total", "", "", strconv.Itoa(files), strconv.Itoa(skipped), strconv.Itoa(subjects), strconv.Itoa(sets), strconv.Itoa(discarded), ""}
	return renderTable(headers, rows, aligns, footer)
}

type generateView struct {
	Generations []generationView `json:"generations"`
}

type generationView struct {
	Code       string `json:"code"`
	Var        string `json:"var"`
	Output     string `json:"output"`
	Status     string `json:"status"`
	Files      int    `json:"files"`
	Skipped    int    `json:"skipped_files"`
	Subjects   int    `json:"subjects"`
	Sets       int    `json:"sets"`
	Discarded  int    `json:"discarded"`
	DurationMS int64  `json:"duration_ms"`
}

func newGenerateView(results []setdex.Result) generateView {
	view := generateView{Generations: make([]generationView, 0, len(results))}
	for _, r := range results {
		view.Generations = append(view.Generations, generationView{
			Code:       r.Job.Code,
			Var:        r.Job.Var,
			Output:     r.Job.Output,
			Status:     strings.ToLower(r.Status),
			Files:      r.Stats.Files,
			Skipped:    r.Stats.Skipped,
			Subjects:   r.Subjects,
			Sets:       r.Sets,
			Discarded:  r.Stats.Discarded,
			DurationMS: r.Duration.Milliseconds(),
		})
	}
	return view
}
