package setdex

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"setdex/internal/analysis"
	"setdex/internal/logging"
)

// Options tune a collection run.
type Options struct {
	// Generation overrides the generation code derived from each file path.
	Generation string
	Logger     *slog.Logger
}

// Stats summarises a collection run.
type Stats struct {
	Files     int
	Skipped   int
	Sets      int
	Discarded int
}

// Collect walks root in lexical order and parses every analysis file into a
// fresh setdex. The context is checked between files.
func Collect(ctx context.Context, root string, opts Options) (*Setdex, Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	dex := New()
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := filepath.Dir(path)
		tier := tierOf(root, dir)
		gen := opts.Generation
		if gen == "" {
			gen = generationOf(dir)
		}
		subject := analysis.SubjectKey(d.Name())
		fileLogger := logger.With(
			logging.String(logging.FieldTier, tier),
			logging.String(logging.FieldSubject, subject),
		)

		if analysis.IsSkippedTier(tier) || analysis.IsSkippedSubject(subject) {
			stats.Skipped++
			fileLogger.Debug("analysis skipped", logging.String("path", path))
			return nil
		}

		lines, err := readAnalysis(path)
		if err != nil {
			return err
		}
		stats.Files++

		kept, discarded, err := collectFile(dex, lines, tier, gen, subject)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		stats.Sets += kept
		stats.Discarded += discarded
		fileLogger.Debug("analysis parsed",
			logging.Int("sets", kept),
			logging.Int("discarded", discarded),
		)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return dex, stats, nil
}

// ParseFile parses a single analysis file into a fresh setdex. An empty tier
// defaults to the name of the file's directory and an empty gen to the
// generation derived from its path.
func ParseFile(path, tier, gen string) (*Setdex, Stats, error) {
	var stats Stats
	dir := filepath.Dir(path)
	if tier == "" {
		tier = filepath.Base(dir)
	}
	if gen == "" {
		gen = generationOf(dir)
	}
	lines, err := readAnalysis(path)
	if err != nil {
		return nil, stats, err
	}
	stats.Files = 1

	dex := New()
	kept, discarded, err := collectFile(dex, lines, tier, gen, analysis.SubjectKey(path))
	stats.Sets, stats.Discarded = kept, discarded
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", path, err)
	}
	return dex, stats, nil
}

// CollectFile parses one analysis document into dex and reports how many
// sets were kept and discarded.
func CollectFile(dex *Setdex, text, tier, gen, subject string) (int, int, error) {
	return collectFile(dex, analysis.SplitLines(text), tier, gen, subject)
}

func collectFile(dex *Setdex, lines []string, tier, gen, subject string) (kept, discarded int, err error) {
	if tier == analysis.TierUnreleased {
		subject = analysis.UnreleasedSubjectKey(subject)
	}
	cur := analysis.NewCursor(lines)
	for {
		line, ok := cur.Next()
		if !ok {
			return kept, discarded, nil
		}
		if !analysis.IsNameLine(line) {
			continue
		}
		label := analysis.SetLabel(tier, line)
		if analysis.IsLeveledLabel(label) {
			discarded++
			continue
		}
		details, err := analysis.ParseDetails(tier, gen, cur)
		if err != nil {
			return kept, discarded, err
		}
		if !analysis.Keep(label, gen, details) {
			discarded++
			continue
		}
		for _, p := range fanOut(subject, Set{Label: label, Details: details}) {
			dex.Add(p.subject, p.set)
		}
		kept++
	}
}

// tierOf returns the slash-separated directory of a file relative to root.
func tierOf(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// generationOf returns the last two characters of the parent of dir.
func generationOf(dir string) string {
	parent := filepath.ToSlash(filepath.Dir(dir))
	if len(parent) < 2 {
		return ""
	}
	return parent[len(parent)-2:]
}
