package setdex

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"setdex/internal/logging"
)

// Job names one generation to convert.
type Job struct {
	Code   string
	Var    string
	Dir    string
	Output string
}

// Result statuses.
const (
	StatusWritten = "written"
	StatusSkipped = "skipped"
	StatusDryRun  = "dry-run"
)

// Result reports the outcome of one job.
type Result struct {
	Job      Job
	Status   string
	Subjects int
	Sets     int
	Stats    Stats
	Duration time.Duration
}

// GenerateOptions tune Generate.
type GenerateOptions struct {
	Logger *slog.Logger
	// DryRun collects and counts sets without writing output files.
	DryRun bool
}

// Generate converts each job in order. A job whose analyses directory does
// not exist is skipped with a warning; any other failure stops the run and is
// returned with the results gathered so far.
func Generate(ctx context.Context, jobs []Job, opts GenerateOptions) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		genLogger := logger.With(logging.String(logging.FieldGeneration, job.Code))
		started := time.Now()

		dex, stats, err := CollectJob(ctx, job, genLogger)
		if errors.Is(err, ErrGenerationMissing) {
			results = append(results, Result{Job: job, Status: StatusSkipped})
			continue
		}
		if err != nil {
			return results, err
		}

		status := StatusDryRun
		if !opts.DryRun {
			if err := WriteFile(job.Output, job.Var, dex); err != nil {
				return results, err
			}
			status = StatusWritten
		}

		result := Result{
			Job:      job,
			Status:   status,
			Subjects: dex.Len(),
			Sets:     dex.SetCount(),
			Stats:    stats,
			Duration: time.Since(started),
		}
		results = append(results, result)
		genLogger.Info("setdex generated",
			logging.String("status", status),
			logging.String("output", job.Output),
			logging.Int("subjects", result.Subjects),
			logging.Int("sets", result.Sets),
			logging.Int("discarded", stats.Discarded),
			logging.Duration("duration", result.Duration),
		)
	}
	return results, nil
}

// ErrGenerationMissing reports a job whose analyses directory does not exist.
var ErrGenerationMissing = errors.New("generation directory missing")

// CollectJob collects the analyses of one job. A missing directory is logged
// as a warning and reported as ErrGenerationMissing so callers can skip it.
func CollectJob(ctx context.Context, job Job, logger *slog.Logger) (*Setdex, Stats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if _, err := os.Stat(job.Dir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, Stats{}, fmt.Errorf("stat %s: %w", job.Dir, err)
		}
		logging.WarnWithHint(logger, "generation directory missing, skipped", "check paths.analyses_dir",
			logging.String("dir", job.Dir),
		)
		return nil, Stats{}, fmt.Errorf("generation %s: %w", job.Code, ErrGenerationMissing)
	}
	dex, stats, err := Collect(ctx, job.Dir, Options{Generation: job.Code, Logger: logger})
	if err != nil {
		return nil, stats, fmt.Errorf("generation %s: %w", job.Code, err)
	}
	return dex, stats, nil
}
