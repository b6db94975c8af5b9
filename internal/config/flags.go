// internal/config/flags.go
package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bethropolis/side/internal/logger"
)

// Flags holds values bound to command-line flags. Only flags the user
// actually set override the configuration.
type Flags struct {
	set *pflag.FlagSet

	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	EnableTags      []string
	DisableTags     []string
	EnablePkgs      []string
	DisablePkgs     []string
	TabWidth        int
	ScrollOff       int
	SystemClipboard bool
	LineNumbers     bool
	Theme           string
	SyntaxDir       string
	SearchDisk      bool
	LargeFileLimit  int64
}

// Register defines the flags on fs and binds them to f.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("path to TOML configuration file (default <config dir>/%s/%s)", ConfigDirName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "log-file", "", "path to write the log file ('-' for stderr)")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "only log messages with these tags")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "drop messages with these tags")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "only log messages from these packages")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "drop messages from these packages")
	fs.IntVar(&f.TabWidth, "tab-width", DefaultTabWidth, "number of spaces inserted for Tab")
	fs.IntVar(&f.ScrollOff, "scroll-off", DefaultScrollOff, "lines of context kept above/below the cursor")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "paste from the system clipboard")
	fs.BoolVar(&f.LineNumbers, "line-numbers", true, "show the line number gutter")
	fs.StringVar(&f.Theme, "theme", "", "name of the color theme")
	fs.StringVar(&f.SyntaxDir, "syntax-dir", "", "override directory for rule sets and languages.toml")
	fs.BoolVar(&f.SearchDisk, "search-disk", true, "look for syntax/ next to the working directory and executable")
	fs.Int64Var(&f.LargeFileLimit, "large-file-threshold", DefaultLargeFileThreshold, "file size in bytes at which highlighting is disabled")
}

// ApplyOverrides copies every explicitly set flag into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	// Cobra parses persistent flags through a merged set, so check Changed
	// instead of relying on Visit.
	f.set.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		logger.DebugTagf("config", "applying flag override: %s=%s", fl.Name, fl.Value.String())
		switch fl.Name {
		case "log-level":
			cfg.Logger.LogLevel = f.LogLevel
		case "log-file":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = f.EnableTags
		case "log-disable-tags":
			cfg.Logger.DisabledTags = f.DisableTags
		case "log-packages":
			cfg.Logger.EnabledPackages = f.EnablePkgs
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = f.DisablePkgs
		case "tab-width":
			if f.TabWidth > 0 {
				cfg.Editor.TabWidth = f.TabWidth
			}
		case "scroll-off":
			if f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = f.ScrollOff
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "line-numbers":
			cfg.Editor.LineNumbers = f.LineNumbers
		case "theme":
			cfg.Editor.Theme = f.Theme
		case "syntax-dir":
			cfg.Syntax.Dir = f.SyntaxDir
		case "search-disk":
			cfg.Syntax.SearchDisk = f.SearchDisk
		case "large-file-threshold":
			cfg.Syntax.LargeFileThreshold = f.LargeFileLimit
		}
	})
}
