// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/side/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"`
	Syntax SyntaxConfig  `toml:"syntax"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	LineNumbers     bool   `toml:"line_numbers"`
	Theme           string `toml:"theme"`
}

// SyntaxConfig controls where rule sets come from and when highlighting is skipped.
type SyntaxConfig struct {
	// Dir is an override directory searched before everything else.
	Dir string `toml:"dir"`
	// SearchDisk enables the syntax/ directories next to the working
	// directory and the executable.
	SearchDisk bool `toml:"search_disk"`
	// LargeFileThreshold is the size in bytes at which files open as plain text.
	LargeFileThreshold int64 `toml:"large_file_threshold"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			LineNumbers:     true,
			Theme:           DefaultTheme,
		},
		Syntax: SyntaxConfig{
			SearchDisk:         true,
			LargeFileThreshold: DefaultLargeFileThreshold,
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, DefaultConfigFileName)
}

// ThemesDir returns the user theme directory, or "" when it cannot be determined.
func ThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ThemesDirName)
}

// loadFromFile decodes filePath over cfg, so keys missing from the file keep
// their current values. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is usually not initialised yet; this lands in the default sink.
		logger.Warnf("Config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // 0 is allowed
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Syntax.LargeFileThreshold <= 0 {
		c.Syntax.LargeFileThreshold = defaults.Syntax.LargeFileThreshold
	}
}

// Load builds the effective configuration: defaults, then the config file
// (configFilePath, or DefaultPath when empty), then the SIDE_SYNTAX_DIR
// environment variable, then any flags the user set explicitly.
// A malformed config file is reported along with the defaults-based config,
// so callers may choose to continue.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(cfg, effectivePath); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if dir := os.Getenv(SyntaxDirEnv); dir != "" {
		cfg.Syntax.Dir = dir
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}
