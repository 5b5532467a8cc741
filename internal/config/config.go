// Package config contains the loader and typed model for rpncalc.yaml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/codex-k8s/rpncalc/internal/display"
	"github.com/codex-k8s/rpncalc/internal/env"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "rpncalc.yaml"

// Config is the calculator configuration after template rendering.
type Config struct {
	// EnvFiles lists .env files loaded before rendering, relative to the config file.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Prompt is printed before every REPL input line.
	Prompt string `yaml:"prompt"`
	// LogLevel is the default log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel,omitempty"`
	// Display controls how the stack and status are rendered.
	Display DisplayConfig `yaml:"display,omitempty"`
}

// DisplayConfig mirrors display.Options in YAML form.
type DisplayConfig struct {
	// Order is bottom-up or top-down.
	Order display.Order `yaml:"order,omitempty"`
	// Separator is newline or space.
	Separator display.Separator `yaml:"separator,omitempty"`
	// Precision is the number of significant digits, -1 for shortest.
	Precision int `yaml:"precision"`
	// Align right-aligns one-per-line output.
	Align bool `yaml:"align,omitempty"`
	// Color is auto, always or never.
	Color display.ColorMode `yaml:"color,omitempty"`
}

// LoadOptions influences template rendering of rpncalc.yaml.
type LoadOptions struct {
	// UserVars are inline variables, highest precedence in EnvMap.
	UserVars env.Vars
}

// TemplateContext is the data exposed to the rpncalc.yaml template.
type TemplateContext struct {
	// ConfigDir is the directory holding the config file.
	ConfigDir string
	// Now is the timestamp captured for rendering.
	Now time.Time
	// UserVars contains inline user variables.
	UserVars env.Vars
	// EnvMap merges OS env, envFiles and user variables.
	EnvMap env.Vars
}

// rawHeader holds the fields needed before templating.
type rawHeader struct {
	EnvFiles []string `yaml:"envFiles"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	opts := display.DefaultOptions()
	return Config{
		Prompt:   "> ",
		LogLevel: "info",
		Display: DisplayConfig{
			Order:     opts.Order,
			Separator: opts.Separator,
			Precision: opts.Precision,
			Align:     opts.Align,
			Color:     opts.Color,
		},
	}
}

// DisplayOptions converts the display block to renderer options.
func (c Config) DisplayOptions() display.Options {
	return display.Options{
		Order:     c.Display.Order,
		Separator: c.Display.Separator,
		Precision: c.Display.Precision,
		Align:     c.Display.Align,
		Color:     c.Display.Color,
	}
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if err := c.DisplayOptions().Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	return nil
}

// LoadAndRender reads the config file, loads its envFiles and returns the
// rendered YAML together with the template context that was used.
// Variables from envFiles override the process environment; UserVars override both.
func LoadAndRender(path string, opts LoadOptions) ([]byte, TemplateContext, error) {
	var zeroCtx TemplateContext

	if path == "" {
		return nil, zeroCtx, fmt.Errorf("config path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("resolve config path: %w", err)
	}

	rawBytes, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zeroCtx, fmt.Errorf("read config %q: %w", absPath, err)
	}

	name := filepath.Base(absPath)
	baseDir := filepath.Dir(absPath)
	ctx := TemplateContext{
		ConfigDir: baseDir,
		Now:       time.Now().UTC(),
		UserVars:  opts.UserVars,
		EnvMap:    env.Merge(env.FromOS(), opts.UserVars),
	}

	// envFiles may itself be templated, so find it in a first rendering
	// without the file variables.
	first, err := RenderTemplate(name, rawBytes, ctx)
	if err != nil {
		return nil, zeroCtx, err
	}
	var header rawHeader
	if err := yaml.Unmarshal(first, &header); err != nil {
		return nil, zeroCtx, fmt.Errorf("parse top-level config fields: %w", err)
	}

	envFileVars, err := env.LoadEnvFiles(baseDir, header.EnvFiles)
	if err != nil {
		return nil, zeroCtx, err
	}
	ctx.EnvMap = env.Merge(env.FromOS(), envFileVars, opts.UserVars)

	rendered, err := RenderTemplate(name, rawBytes, ctx)
	if err != nil {
		return nil, zeroCtx, err
	}
	return rendered, ctx, nil
}

// Load loads, templates and parses the config file on top of Default.
func Load(path string, opts LoadOptions) (*Config, TemplateContext, error) {
	rendered, ctx, err := LoadAndRender(path, opts)
	if err != nil {
		return nil, TemplateContext{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(rendered, &cfg); err != nil {
		return nil, TemplateContext{}, fmt.Errorf("parse rendered %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, TemplateContext{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, ctx, nil
}

// RenderTemplate renders raw with the config template helpers.
func RenderTemplate(name string, raw []byte, ctx TemplateContext) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Funcs(buildFuncMap(ctx)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func buildFuncMap(ctx TemplateContext) template.FuncMap {
	return template.FuncMap{
		"default": funcDef,
		"envOr":   ctx.EnvMap.Lookup,
		"toLower": strings.ToLower,
		"now":     func() time.Time { return ctx.Now },
	}
}

// funcDef returns def when value is blank.
func funcDef(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
