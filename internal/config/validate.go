package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"unicode/utf8"
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGenerations(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.AnalysesDir == "" {
		return errors.New("paths.analyses_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateGenerations() error {
	if len(c.Generations) == 0 {
		return errors.New("at least one [[generations]] entry is required")
	}
	codes := make(map[string]struct{}, len(c.Generations))
	files := make(map[string]string, len(c.Generations))
	for i, gen := range c.Generations {
		if gen.Code == "" {
			return fmt.Errorf("generations[%d].code must be set", i)
		}
		if utf8.RuneCountInString(gen.Code) != 2 {
			return fmt.Errorf("generations[%d].code %q must be two characters", i, gen.Code)
		}
		if _, dup := codes[gen.Code]; dup {
			return fmt.Errorf("generations[%d].code %q is listed twice", i, gen.Code)
		}
		codes[gen.Code] = struct{}{}

		if !jsIdentifier.MatchString(gen.Var) {
			return fmt.Errorf("generations[%d].var %q is not a valid JavaScript identifier", i, gen.Var)
		}
		if gen.File == "" {
			return fmt.Errorf("generations[%d].file must be set", i)
		}
		if filepath.Base(gen.File) != gen.File {
			return fmt.Errorf("generations[%d].file %q must be a bare file name", i, gen.File)
		}
		if other, dup := files[gen.File]; dup {
			return fmt.Errorf("generations[%d].file %q is also used by generation %q", i, gen.File, other)
		}
		files[gen.File] = gen.Code
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
