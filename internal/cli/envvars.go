package cli

import (
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from RPNCALC_* env vars.
type baseEnv struct {
	// ConfigPath is the rpncalc.yaml path from RPNCALC_CONFIG.
	ConfigPath string `env:"RPNCALC_CONFIG"`
	// Vars is a k=v,k2=v2 list from RPNCALC_VARS.
	Vars string `env:"RPNCALC_VARS"`
	// LogLevel is the logging level from RPNCALC_LOG_LEVEL.
	LogLevel string `env:"RPNCALC_LOG_LEVEL"`
	// Color is the color mode from RPNCALC_COLOR.
	Color string `env:"RPNCALC_COLOR"`
	// Prompt is the REPL prompt from RPNCALC_PROMPT.
	Prompt *string `env:"RPNCALC_PROMPT"`
}

// evalEnv captures RPNCALC_* inputs for the eval command.
type evalEnv struct {
	// Strict turns token errors into a failing exit from RPNCALC_STRICT.
	Strict bool `env:"RPNCALC_STRICT"`
	// GitHubOutput publishes step outputs from RPNCALC_GITHUB_OUTPUT.
	GitHubOutput bool `env:"RPNCALC_GITHUB_OUTPUT"`
}

// parseEnv fills target from RPNCALC_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
