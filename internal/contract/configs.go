package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/landsense/chartkit/schema"
	"go.uber.org/zap"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 6
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a render.
// This struct is the "final, validated" config.
type Config struct {
	Inputs     []string // Input files; "-" reads stdin
	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int    // Terminal width override (0 = auto-detect)
	Variable   string // Fallback variable when an envelope names none
	Trend      bool   // Add trend overlays to temporal charts
	Verbose    bool

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output

	Logger *zap.Logger
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Workers    int    `mapstructure:"workers"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
	Verbose    bool   `mapstructure:"verbose"`

	// --- Fields from renderCmd.Flags() ---
	Variable string `mapstructure:"variable"`
	Trend    string `mapstructure:"trend"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Inputs != nil {
		clone.Inputs = make([]string, len(c.Inputs))
		copy(clone.Inputs, c.Inputs)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutput(cfg, input); err != nil {
		return err
	}
	return resolveInputs(cfg, input)
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Width = input.Width
	cfg.Variable = strings.TrimSpace(input.Variable)
	cfg.Verbose = input.Verbose

	// Parse emoji flag
	emojis, err := ParseBoolString(defaultString(input.Emoji, "no"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(defaultString(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// Parse trend flag
	trend, err := ParseBoolString(defaultString(input.Trend, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --trend value: %w", err)
	}
	cfg.Trend = trend

	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// validateOutput checks the output mode and whether it needs a file.
func validateOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx, html", input.Output)
	}
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if _, binary := schema.BinaryOutputModes[cfg.Output]; binary && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}
	return nil
}

// resolveInputs cleans positional input paths. No inputs means stdin.
func resolveInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Inputs = nil
	for _, arg := range input.InputArgs {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if arg == StdinPath {
			cfg.Inputs = append(cfg.Inputs, arg)
			continue
		}
		cfg.Inputs = append(cfg.Inputs, filepath.Clean(arg))
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{StdinPath}
	}
	return nil
}

// ProcessProfilingConfig enables profiling when a prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
