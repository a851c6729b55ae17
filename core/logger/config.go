package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// Verbose logs every replace/skip decision at info level instead of debug.
	Verbose bool `mapstructure:"verbose" default:"false"`
}
