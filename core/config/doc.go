// Package config provides configuration management for the usermap reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: userdata directory and profile file pattern (SOURCE_DIR, SOURCE_PATTERN)
//   - Cache: directory holding usermap.bin and uuids.bin (CACHE_DIR)
//   - Log: logging level, format and verbosity (LOG_LEVEL, LOG_FORMAT, LOG_VERBOSE)
//   - Database: export target (DATABASE_DRIVER, DATABASE_NAME, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Dir)
package config
