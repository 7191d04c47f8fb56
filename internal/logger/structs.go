package logger

import (
	"time"
)

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled" toml:"enabled"`
	UseConsoleWriter bool `mapstructure:"useConsoleWriter" toml:"useConsoleWriter"`
}

// RotateFile is a single lumberjack managed log file.
type RotateFile struct {
	Name       string `mapstructure:"name" toml:"name"`
	MaxSize    int    `mapstructure:"maxSize" toml:"maxSize"` // megabytes
	MaxBackups int    `mapstructure:"maxBackups" toml:"maxBackups"`
	MaxAge     int    `mapstructure:"maxAge" toml:"maxAge"` // days
}

// LogFile implements a file based logger with one rotating file per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path" toml:"path"`

	Access RotateFile `mapstructure:"access" toml:"access"`
	Error  RotateFile `mapstructure:"error" toml:"error"`
	Info   RotateFile `mapstructure:"info" toml:"info"`
	Trace  RotateFile `mapstructure:"trace" toml:"trace"`
	Warn   RotateFile `mapstructure:"warn" toml:"warn"`
}

// DataDog implements a datadog config.
type DataDog struct {
	Enabled bool          `mapstructure:"enabled" toml:"enabled"`
	APIKey  string        `mapstructure:"apiKey" toml:"apiKey"` // API Key defined at datadog
	Site    string        `mapstructure:"site" toml:"site"`     // Regional Site aka DD_SITE ("datadoghq.eu")
	Source  string        `mapstructure:"source" toml:"source"`
	Tags    string        `mapstructure:"tags" toml:"tags"`
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout"` // how long to wait to send a log entry to datadog.
}

// Log implements the logger config.
type Log struct {
	LogLevel string // info, warn, error.
	LogEnv   string

	// EnableAccessLogToConsole if true the webserver access log is written to the console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	File LogFile `mapstructure:"file" toml:"file"`

	DataDog DataDog
}
