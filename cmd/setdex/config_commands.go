package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"setdex/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(targetPath)
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Stat(expanded); err == nil {
					return fmt.Errorf("config file %s already exists (use --overwrite to replace)", expanded)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("inspect config path: %w", err)
				}
			}
			if err := config.CreateSample(expanded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing file if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and print the configured generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ctx.configSeen {
				fmt.Fprintf(out, "Config: %s\n", ctx.configPath)
			} else {
				fmt.Fprintln(out, "Config: defaults (no file found)")
			}
			fmt.Fprintf(out, "Analyses: %s\n", cfg.Paths.AnalysesDir)
			fmt.Fprintf(out, "Output: %s\n", cfg.Paths.OutputDir)

			headers := []string{"Gen", "Var", "File", "Analyses"}
			rows := make([][]string, 0, len(cfg.Generations))
			for _, gen := range cfg.Generations {
				rows = append(rows, []string{gen.Code, gen.Var, gen.File, cfg.GenerationDir(gen)})
			}
			fmt.Fprintln(out, renderTable(headers, rows, nil, nil))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
