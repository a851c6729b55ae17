// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). The reconciler's structured events are written
// through this logger by report.ZapSink.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//   - Verbose: promote replace/skip decisions from debug to info
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Building usermap")
//
//	l := logger.WithRun(log, "build", "userdata")
//	l.Warn("Profile skipped", zap.String("file", path))
package logger
