package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGenerations()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := lookupEnv(envAnalysesDir); ok {
		c.Paths.AnalysesDir = value
	}
	if value, ok := lookupEnv(envOutputDir); ok {
		c.Paths.OutputDir = value
	}
	if value, ok := lookupEnv(envExportDB); ok {
		c.Paths.ExportDB = value
	}

	if strings.TrimSpace(c.Paths.AnalysesDir) == "" {
		c.Paths.AnalysesDir = defaultAnalysesDir
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}

	var err error
	if c.Paths.AnalysesDir, err = expandPath(strings.TrimSpace(c.Paths.AnalysesDir)); err != nil {
		return fmt.Errorf("paths.analyses_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.ExportDB, err = expandPath(strings.TrimSpace(c.Paths.ExportDB)); err != nil {
		return fmt.Errorf("paths.export_db: %w", err)
	}
	return nil
}

// normalizeGenerations lower-cases codes and fills the export name and file
// of well-known generations left blank.
func (c *Config) normalizeGenerations() {
	if len(c.Generations) == 0 {
		c.Generations = DefaultGenerations()
		return
	}
	for i := range c.Generations {
		gen := &c.Generations[i]
		gen.Code = strings.ToLower(strings.TrimSpace(gen.Code))
		gen.Var = strings.TrimSpace(gen.Var)
		gen.File = strings.TrimSpace(gen.File)
		known, ok := defaultGeneration(gen.Code)
		if !ok {
			continue
		}
		if gen.Var == "" {
			gen.Var = known.Var
		}
		if gen.File == "" {
			gen.File = known.File
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
