package userdata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/reconcile"
	"usermap-reconciler/core/report"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrMissingInputDirectory is returned when the userdata directory does not exist.
var ErrMissingInputDirectory = errors.New("missing userdata directory")

// DefaultPattern matches YAML profile files.
const DefaultPattern = "*.yml"

// suffixLen is the length of the ".yml" suffix stripped from profile file
// names to recover the identifier.
const suffixLen = 4

// Adapter reads observations from a userdata directory.
type Adapter struct {
	dir     string
	pattern string
}

// NewAdapter creates an adapter for the profiles in dir whose base name
// matches pattern. An empty pattern means DefaultPattern.
func NewAdapter(dir, pattern string) *Adapter {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Adapter{dir: dir, pattern: pattern}
}

// Name returns "userdata".
func (a *Adapter) Name() string {
	return "userdata"
}

// Files returns the profile paths in the directory, sorted by name.
func (a *Adapter) Files() ([]string, error) {
	if !doublestar.ValidatePattern(a.pattern) {
		return nil, fmt.Errorf("invalid profile pattern: %q", a.pattern)
	}

	info, err := os.Stat(a.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingInputDirectory, a.dir)
	}

	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if ok, _ := doublestar.Match(a.pattern, entry.Name()); ok {
			files = append(files, filepath.Join(a.dir, entry.Name()))
		}
	}
	return files, nil
}

// Observations reads every profile. Unusable profiles are reported to sink
// and skipped. Identifier file names are case-insensitive, so two files can
// name the same player; only the first one in file order is used.
func (a *Adapter) Observations(ctx context.Context, sink report.Sink) ([]reconcile.Observation, error) {
	sink = report.OrDiscard(sink)

	files, err := a.Files()
	if err != nil {
		return nil, err
	}

	observations := make([]reconcile.Observation, 0, len(files))
	firstPath := make(map[identity.ID]string, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		obs, ok := a.read(path, sink)
		if !ok {
			continue
		}
		if first, dup := firstPath[obs.ID]; dup {
			sink.Emit(report.Event{
				Kind:   report.KindDuplicateProfile,
				Name:   obs.Name,
				New:    obs.ID,
				Source: path,
				Detail: "already read from " + first,
			})
			continue
		}
		firstPath[obs.ID] = path
		observations = append(observations, obs)
	}
	return observations, nil
}

func (a *Adapter) read(path string, sink report.Sink) (reconcile.Observation, bool) {
	id, err := IDFromFileName(filepath.Base(path))
	if err != nil {
		sink.Emit(report.Event{
			Kind:   report.KindMalformedIdentifier,
			Source: path,
			Detail: err.Error(),
		})
		return reconcile.Observation{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		sink.Emit(report.Event{Kind: report.KindUnreadableProfile, New: id, Source: path, Detail: err.Error()})
		return reconcile.Observation{}, false
	}

	profile, err := ParseProfile(data)
	if err != nil {
		sink.Emit(report.Event{Kind: report.KindUnreadableProfile, New: id, Source: path, Detail: err.Error()})
		return reconcile.Observation{}, false
	}

	if profile.AccountName == "" {
		sink.Emit(report.Event{Kind: report.KindMissingAccountName, New: id, Source: path})
		return reconcile.Observation{}, false
	}

	return reconcile.Observation{
		ID:       id,
		Name:     profile.AccountName,
		LastSeen: profile.Logout,
		Source:   path,
	}, true
}

// IDFromFileName recovers the identifier from a profile file name by
// stripping its 4-character suffix.
func IDFromFileName(name string) (identity.ID, error) {
	if len(name) <= suffixLen {
		return identity.Nil, fmt.Errorf("%w: file name %q too short", identity.ErrMalformedIdentifier, name)
	}
	return identity.Parse(name[:len(name)-suffixLen])
}
