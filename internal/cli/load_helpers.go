package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/rpncalc/internal/config"
	"github.com/codex-k8s/rpncalc/internal/display"
	"github.com/codex-k8s/rpncalc/internal/env"
)

// loadConfigFromCmd resolves the effective config: flags over RPNCALC_* env
// over the config file over built-in defaults.
func loadConfigFromCmd(opts *Options, cmd *cobra.Command) (*config.Config, error) {
	var envCfg baseEnv
	if err := parseEnv(&envCfg); err != nil {
		return nil, fmt.Errorf("parse RPNCALC_* env: %w", err)
	}

	inlineVars, err := env.ParseInlineVars(firstNonEmpty(opts.Vars, envCfg.Vars))
	if err != nil {
		return nil, err
	}

	path := firstNonEmpty(opts.ConfigPath, envCfg.ConfigPath)
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	cfg := config.Default()
	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		loaded, _, err := config.Load(path, config.LoadOptions{UserVars: inlineVars})
		if err != nil {
			return nil, err
		}
		cfg = *loaded
		opts.ConfigPath = path
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config %q: %w", path, statErr)
	}

	cfg.LogLevel = firstNonEmpty(opts.LogLevel, envCfg.LogLevel, cfg.LogLevel)
	if c := firstNonEmpty(opts.Color, envCfg.Color); c != "" {
		cfg.Display.Color = display.ColorMode(c)
	}
	switch {
	case flagChanged(cmd, "prompt"):
		cfg.Prompt = opts.Prompt
	case envCfg.Prompt != nil:
		cfg.Prompt = *envCfg.Prompt
	}

	if opts.Display.Order != "" {
		cfg.Display.Order = display.Order(opts.Display.Order)
	}
	if opts.Display.Separator != "" {
		cfg.Display.Separator = display.Separator(opts.Display.Separator)
	}
	if flagChanged(cmd, "precision") {
		cfg.Display.Precision = opts.Display.Precision
	}
	if flagChanged(cmd, "align") {
		cfg.Display.Align = opts.Display.Align
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
