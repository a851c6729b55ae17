package reconcile

import (
	"usermap-reconciler/core/identity"
)

// Observation is a single fact about an identifier: the name it last used and
// when it was last active.
type Observation struct {
	// ID is the player identifier.
	ID identity.ID

	// Name is the last known account name.
	Name string

	// LastSeen is the logout timestamp, in epoch milliseconds. Zero if unknown.
	LastSeen int64

	// Source describes where the observation came from, for reporting only.
	Source string
}

// Snapshot exposes the reconciled indexes.
type Snapshot struct {
	// Names is the canonical name -> identifier mapping.
	Names *identity.NameIndex

	// Seen maps every retained identifier to its last-seen timestamp.
	Seen *identity.SeenIndex
}

// KnownIDs returns the identifiers of the timestamp index as a Set.
func (s Snapshot) KnownIDs() *identity.Set {
	ids := identity.NewSet()
	s.Seen.Each(func(id identity.ID, _ int64) {
		ids.Add(id)
	})
	return ids
}

// Summary provides aggregate counts for a reconciliation pass.
type Summary struct {
	// Observations is the number of observations ingested.
	Observations int `json:"observations"`

	// Inserted counts names seen for the first time.
	Inserted int `json:"inserted"`

	// Replaced counts observations that superseded an existing record.
	Replaced int `json:"replaced"`

	// Skipped counts observations discarded in favour of an existing record.
	Skipped int `json:"skipped"`

	// InvalidNames counts observations whose name failed validation.
	InvalidNames int `json:"invalid_names"`
}
