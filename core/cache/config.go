package cache

// File names are fixed by convention; only their directory is configurable.
const (
	UsermapFile = "usermap.bin"
	UUIDsFile   = "uuids.bin"
)

// Config holds configuration for the binary caches.
type Config struct {
	// Dir is the directory holding usermap.bin and uuids.bin.
	Dir string `mapstructure:"dir" default:"."`
}
