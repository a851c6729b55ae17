package cache

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"
)

// ErrMissingCacheFile is returned by Load when either cache file is absent.
var ErrMissingCacheFile = errors.New("missing cache file")

// TempFilePrefix is the prefix used for temporary atomic write files.
const TempFilePrefix = "usermap-tmp-"

// Paths returns the usermap and uuid cache paths inside dir.
func Paths(dir string) (usermap, uuids string) {
	return filepath.Join(dir, UsermapFile), filepath.Join(dir, UUIDsFile)
}

// Load decodes both cache files in dir. Both files must exist before anything
// is read; otherwise ErrMissingCacheFile is returned and nothing is loaded.
func Load(dir string, sink report.Sink) (*Contents, error) {
	usermapPath, uuidsPath := Paths(dir)
	for _, path := range []string{usermapPath, uuidsPath} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingCacheFile, path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	names, err := loadFile(usermapPath, func(r io.Reader) (*identity.NameIndex, error) {
		return DecodeNames(r, usermapPath, sink)
	})
	if err != nil {
		return nil, err
	}

	ids, err := loadFile(uuidsPath, func(r io.Reader) (*identity.Set, error) {
		return DecodeIDs(r, uuidsPath, sink)
	})
	if err != nil {
		return nil, err
	}

	return &Contents{Names: names, IDs: ids}, nil
}

func loadFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zero, fmt.Errorf("%w: %s", ErrMissingCacheFile, path)
		}
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return v, nil
}

// createTemp creates the temp files Save renames into place.
var createTemp = os.CreateTemp

// Save writes c to dir. Both files are fully written to temp files before
// either is renamed into place, so a failed write leaves the old pair intact.
func Save(dir string, c *Contents) error {
	usermapPath, uuidsPath := Paths(dir)

	var names, ids bytes.Buffer
	if err := EncodeNames(&names, c.Names); err != nil {
		return fmt.Errorf("failed to encode %s: %w", UsermapFile, err)
	}
	if err := EncodeIDs(&ids, c.IDs); err != nil {
		return fmt.Errorf("failed to encode %s: %w", UUIDsFile, err)
	}

	namesTmp, err := writeTemp(dir, names.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", UsermapFile, err)
	}
	defer os.Remove(namesTmp) // no-op once renamed

	idsTmp, err := writeTemp(dir, ids.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", UUIDsFile, err)
	}
	defer os.Remove(idsTmp)

	if err := os.Rename(namesTmp, usermapPath); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", usermapPath, err)
	}
	if err := os.Rename(idsTmp, uuidsPath); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", uuidsPath, err)
	}
	return nil
}

// writeTemp writes data to a synced temp file in dir and returns its path.
// The caller renames or removes it.
func writeTemp(dir string, data []byte, perm os.FileMode) (string, error) {
	tmpFile, err := createTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(name, perm); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to chmod temp file: %w", err)
	}

	return name, nil
}
