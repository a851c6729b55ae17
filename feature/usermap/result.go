package usermap

import (
	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/reconcile"
	"usermap-reconciler/core/report"
)

// Mode names the run that produced a Result.
type Mode string

const (
	ModeBuild Mode = "build"
	ModeDump  Mode = "dump"
)

// Result is the outcome of a Build or Dump run.
type Result struct {
	Mode Mode

	// Names is the canonical name -> identifier mapping.
	Names *identity.NameIndex

	// IDs is the known identifier set: the reconciled identifiers for a
	// build, the contents of uuids.bin for a dump.
	IDs *identity.Set

	// Seen holds last-seen timestamps. Only set for builds.
	Seen *identity.SeenIndex

	// Reconcile holds decision counts. Only set for builds.
	Reconcile *reconcile.Summary

	// Events lists every event emitted during the run.
	Events []report.Event
}

// Entry is one row of the name mapping.
type Entry struct {
	Name     string      `json:"name"`
	UUID     identity.ID `json:"uuid"`
	LastSeen *int64      `json:"last_seen,omitempty"`
}

// Entries returns the name mapping in insertion order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, 0, r.Names.Len())
	r.Names.Each(func(name string, id identity.ID) {
		entry := Entry{Name: name, UUID: id}
		if r.Seen != nil {
			if ts, ok := r.Seen.Get(id); ok {
				entry.LastSeen = &ts
			}
		}
		entries = append(entries, entry)
	})
	return entries
}

// Summary provides aggregate counts for a Result.
type Summary struct {
	// Names is the number of entries in the name cache.
	Names int `json:"names"`

	// KnownUUIDs is the number of entries in the identifier cache.
	KnownUUIDs int `json:"known_uuids"`

	// Warnings counts data-integrity events.
	Warnings int `json:"warnings"`

	// Reconcile holds decision counts for builds.
	Reconcile *reconcile.Summary `json:"reconcile,omitempty"`
}

// Summary returns the aggregate counts of r.
func (r *Result) Summary() Summary {
	s := Summary{
		Names:      r.Names.Len(),
		KnownUUIDs: r.IDs.Len(),
		Reconcile:  r.Reconcile,
	}
	for _, e := range r.Events {
		if e.Kind.Warning() {
			s.Warnings++
		}
	}
	return s
}
