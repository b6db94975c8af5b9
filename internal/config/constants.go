package config

import "time"

// Base application details
const AppName = "side"
const ConfigDirName = "side"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "side.log"

// SyntaxDirEnv names an override directory for rule sets and the language manifest.
const SyntaxDirEnv = "SIDE_SYNTAX_DIR"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultTheme = "Side Dark"

// DefaultLargeFileThreshold is the file size at which highlighting is turned off.
const DefaultLargeFileThreshold int64 = 2 * 1024 * 1024
