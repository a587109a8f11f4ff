package config

const (
	defaultAnalysesDir = "scms/dex/analyses"
	defaultOutputDir   = "."
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"

	defaultConfigPath = "~/.config/setdex/config.toml"
	projectConfigName = "setdex.toml"
	envAnalysesDir    = "SETDEX_ANALYSES_DIR"
	envOutputDir      = "SETDEX_OUTPUT_DIR"
	envExportDB       = "SETDEX_EXPORT_DB"
)

// defaultGenerations lists the generations converted by default, oldest
// first. Ruby/Sapphire analyses export under the legacy ADV name.
var defaultGenerations = []Generation{
	{Code: "rb", Var: "SETDEX_RBY", File: "setdex_rby.js"},
	{Code: "gs", Var: "SETDEX_GSC", File: "setdex_gsc.js"},
	{Code: "rs", Var: "SETDEX_ADV", File: "setdex_rse.js"},
	{Code: "dp", Var: "SETDEX_DPP", File: "setdex_dpp.js"},
	{Code: "bw", Var: "SETDEX_BW", File: "setdex_bw.js"},
	{Code: "xy", Var: "SETDEX_XY", File: "setdex_xy.js"},
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AnalysesDir: defaultAnalysesDir,
			OutputDir:   defaultOutputDir,
		},
		Generations: DefaultGenerations(),
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultGenerations returns a copy of the built-in generation table.
func DefaultGenerations() []Generation {
	out := make([]Generation, len(defaultGenerations))
	copy(out, defaultGenerations)
	return out
}

func defaultGeneration(code string) (Generation, bool) {
	for _, gen := range defaultGenerations {
		if gen.Code == code {
			return gen, true
		}
	}
	return Generation{}, false
}
