package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/teaspoon-report/internal/display"
	"gopkg.in/yaml.v3"
)

// Config represents report rendering options
type Config struct {
	// Suite overrides the suite name used in re-run commands (empty = use the snapshot's)
	Suite string `yaml:"suite"`

	// RunnerCommand prefixes every re-run command
	RunnerCommand string `yaml:"runner_command"`

	// FrameworkMarkers identify trace lines that belong to the test framework
	FrameworkMarkers []string `yaml:"framework_markers"`

	// Color selects when escape sequences are written (auto, always, never)
	Color string `yaml:"color"`

	// Root is the project root trace paths are shortened against (empty = keep absolute paths)
	Root string `yaml:"root"`

	// Output is a report file path (empty = stdout)
	Output string `yaml:"output"`

	// TruncateOutput truncates the report file instead of appending to it
	TruncateOutput bool `yaml:"truncate_output"`

	// LockTimeout bounds the wait for another writer to release the report file
	LockTimeout time.Duration `yaml:"lock_timeout"`

	// LogLevel sets the diagnostic logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run diagnostic log files in this directory (empty = disabled)
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		RunnerCommand:    "teaspoon",
		FrameworkMarkers: []string{"mocha", "chai"},
		Color:            string(display.ColorAuto),
		LockTimeout:      30 * time.Second,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("10s"), so decode into a shadow struct first
	type yamlConfig struct {
		Suite            string   `yaml:"suite"`
		RunnerCommand    string   `yaml:"runner_command"`
		FrameworkMarkers []string `yaml:"framework_markers"`
		Color            string   `yaml:"color"`
		Root             string   `yaml:"root"`
		Output           string   `yaml:"output"`
		TruncateOutput   bool     `yaml:"truncate_output"`
		LockTimeout      string   `yaml:"lock_timeout"`
		LogLevel         string   `yaml:"log_level"`
		LogDir           string   `yaml:"log_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.Suite != "" {
		cfg.Suite = yamlCfg.Suite
	}
	if yamlCfg.RunnerCommand != "" {
		cfg.RunnerCommand = yamlCfg.RunnerCommand
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
	if yamlCfg.Root != "" {
		cfg.Root = yamlCfg.Root
	}
	if yamlCfg.Output != "" {
		cfg.Output = yamlCfg.Output
	}
	if yamlCfg.TruncateOutput {
		cfg.TruncateOutput = true
	}
	if yamlCfg.LockTimeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.LockTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid lock_timeout format %q: %w", yamlCfg.LockTimeout, err)
		}
		cfg.LockTimeout = timeout
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}

	// An explicit framework_markers key replaces the defaults, even when empty
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["framework_markers"]; exists {
			cfg.FrameworkMarkers = nonEmpty(yamlCfg.FrameworkMarkers)
		}
	}

	return cfg, nil
}

// ConfigPath returns the conventional config location inside dir
func ConfigPath(dir string) string {
	return filepath.Join(dir, ".teaspoon", "report.yaml")
}

// LoadConfigFromDir loads configuration from .teaspoon/report.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(ConfigPath(dir))
}

// FlagOverrides carries CLI flag values; nil fields were not set on the command line
type FlagOverrides struct {
	Suite            *string
	RunnerCommand    *string
	FrameworkMarkers *[]string
	Color            *string
	Root             *string
	Output           *string
	TruncateOutput   *bool
	LockTimeout      *time.Duration
	LogLevel         *string
	LogDir           *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.Suite != nil {
		c.Suite = *f.Suite
	}
	if f.RunnerCommand != nil {
		c.RunnerCommand = *f.RunnerCommand
	}
	if f.FrameworkMarkers != nil {
		c.FrameworkMarkers = nonEmpty(*f.FrameworkMarkers)
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Root != nil {
		c.Root = *f.Root
	}
	if f.Output != nil {
		c.Output = *f.Output
	}
	if f.TruncateOutput != nil {
		c.TruncateOutput = *f.TruncateOutput
	}
	if f.LockTimeout != nil {
		c.LockTimeout = *f.LockTimeout
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.LogDir != nil {
		c.LogDir = *f.LogDir
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RunnerCommand) == "" {
		return fmt.Errorf("runner_command cannot be empty")
	}

	if _, err := display.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must be >= 0, got %v", c.LockTimeout)
	}

	return nil
}

// ColorMode returns the parsed color mode, falling back to auto
func (c *Config) ColorMode() display.ColorMode {
	mode, err := display.ParseColorMode(c.Color)
	if err != nil {
		return display.ColorAuto
	}
	return mode
}

// nonEmpty drops blank markers and always returns a non-nil slice, so an
// explicitly empty list disables framework detection instead of restoring defaults
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
