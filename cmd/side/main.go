// cmd/side/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bethropolis/side/internal/app"
	"github.com/bethropolis/side/internal/config"
	"github.com/bethropolis/side/internal/logger"
)

var configFlags config.Flags

var rootCmd = &cobra.Command{
	Use:           "side [file]",
	Short:         "A small terminal text editor with rule-based syntax highlighting",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func main() {
	configFlags.Register(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("color", "auto", "colorize command output (auto|on|off)")

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(languagesCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	logger.Infof("Starting side editor...")
	sideApp, err := app.NewApp(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}
	if err := sideApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}
	logger.Infof("side editor finished.")
	return nil
}

// setup loads the configuration and starts logging. A malformed config
// file is logged and the defaults are used.
func setup() (*config.Config, func(), error) {
	cfg, loadErr := config.Load(configFlags.ConfigFilePath, &configFlags)

	out, closer, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Logger, out)
	if loadErr != nil {
		logger.Warnf("Using default configuration: %v", loadErr)
	}
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)

	return cfg, func() {
		if err := closer(); err != nil {
			logger.Warnf("closing log output: %v", err)
		}
	}, nil
}

// useColor resolves the persistent --color flag for f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
