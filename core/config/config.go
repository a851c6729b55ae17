package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"usermap-reconciler/core/cache"
	"usermap-reconciler/core/database"
	"usermap-reconciler/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source holds configuration for the userdata profile directory.
	Source SourceConfig `mapstructure:"source"`
	// Cache holds configuration for the binary usermap caches.
	Cache cache.Config `mapstructure:"cache"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional usermap export.
	Database database.Config `mapstructure:"database"`
}

// SourceConfig holds configuration for the per-user profile files.
type SourceConfig struct {
	// Dir is the directory holding one <uuid>.yml profile per player.
	Dir string `mapstructure:"dir" default:"userdata"`
	// Pattern selects profile files by base name (doublestar syntax).
	Pattern string `mapstructure:"pattern" default:"*.yml"`
}

// LoadConfig loads configuration from environment variables and the .env file
// in path, if any. Keys map to variables with dots replaced by underscores
// (source.dir -> SOURCE_DIR).
func LoadConfig(path string) (*Config, error) {
	// Ignore error if the file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CACHE_DIR -> cache.dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
