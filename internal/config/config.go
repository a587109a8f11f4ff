package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the input and output locations.
type Paths struct {
	AnalysesDir string `toml:"analyses_dir"`
	OutputDir   string `toml:"output_dir"`
	ExportDB    string `toml:"export_db"`
}

// Generation maps an analyses subdirectory to the global variable and file
// name of its setdex.
type Generation struct {
	Code string `toml:"code"`
	Var  string `toml:"var"`
	File string `toml:"file"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for setdex.
//
// Configuration sections:
//   - Paths: analyses tree, output directory and optional export database
//   - Generations: one entry per converted generation
//   - Logging: log format and level
type Config struct {
	Paths       Paths        `toml:"paths"`
	Generations []Generation `toml:"generations"`
	Logging     Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Lookup returns the configured generation with the given code.
func (c *Config) Lookup(code string) (Generation, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, gen := range c.Generations {
		if gen.Code == code {
			return gen, true
		}
	}
	return Generation{}, false
}

// Select returns the configured generations named by codes in configuration
// order. An empty selection returns every generation.
func (c *Config) Select(codes []string) ([]Generation, error) {
	if len(codes) == 0 {
		out := make([]Generation, len(c.Generations))
		copy(out, c.Generations)
		return out, nil
	}
	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		gen, ok := c.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("unknown generation %q", code)
		}
		wanted[gen.Code] = struct{}{}
	}
	var out []Generation
	for _, gen := range c.Generations {
		if _, ok := wanted[gen.Code]; ok {
			out = append(out, gen)
		}
	}
	return out, nil
}

// GenerationDir returns the analyses directory of gen.
func (c *Config) GenerationDir(gen Generation) string {
	return filepath.Join(c.Paths.AnalysesDir, gen.Code)
}

// OutputPath returns the setdex file path of gen.
func (c *Config) OutputPath(gen Generation) string {
	return filepath.Join(c.Paths.OutputDir, gen.File)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
