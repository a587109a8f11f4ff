package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"setdex/internal/config"
	"setdex/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	home := filepath.Join(testsupport.BaseDir(cfg), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	for _, key := range []string{"SETDEX_ANALYSES_DIR", "SETDEX_OUTPUT_DIR", "SETDEX_EXPORT_DB"} {
		t.Setenv(key, "")
	}

	configPath := filepath.Join(testsupport.BaseDir(cfg), "setdex.toml")
	writeTestConfig(t, configPath, cfg)

	testsupport.WriteAnalysis(t, cfg.Paths.AnalysesDir, "xy/OU/Garchomp.txt",
		"name: Swords Dance",
		"move 1: Swords Dance",
		"move 2: Earthquake",
		"item: Life Orb",
		"nature: Jolly",
		"evs: 252 Atk / 4 SpD / 252 Spe",
		"",
		"name: Level 5 Lead",
		"nature: Jolly",
	)
	testsupport.WriteAnalysis(t, cfg.Paths.AnalysesDir, "xy/OU/Charizard.txt",
		"name: Dragon Dance",
		"move 1: Dragon Dance",
		"item: Charizardite X",
		"ability: Blaze",
		"nature: Adamant",
	)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
