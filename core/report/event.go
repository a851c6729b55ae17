package report

import (
	"usermap-reconciler/core/identity"
)

// Kind identifies what an Event describes.
type Kind string

const (
	// KindInserted records a name seen for the first time.
	KindInserted Kind = "inserted"
	// KindReplaced records a newer identifier superseding the old one for a name.
	KindReplaced Kind = "replaced"
	// KindSkipped records an observation discarded in favour of the existing record.
	KindSkipped Kind = "skipped"
	// KindInvalidName warns that a name has characters outside [a-z0-9].
	KindInvalidName Kind = "invalid_name_characters"
	// KindMalformedIdentifier reports a record whose identifier could not be parsed.
	KindMalformedIdentifier Kind = "malformed_identifier"
	// KindMissingAccountName reports a profile without a last-account-name.
	KindMissingAccountName Kind = "missing_account_name"
	// KindUnreadableProfile reports a profile file that could not be read or parsed.
	KindUnreadableProfile Kind = "unreadable_profile"
	// KindDuplicateProfile reports a second profile file resolving to an identifier already read.
	KindDuplicateProfile Kind = "duplicate_profile"
	// KindUnseenIdentifier reports a name whose identifier has no last-seen timestamp.
	KindUnseenIdentifier Kind = "unseen_identifier"
	// KindReplacedDuringLoad reports a name stored twice in the name cache.
	KindReplacedDuringLoad Kind = "replaced_during_load"
	// KindDuplicateCacheEntry reports an identifier stored twice in the identifier cache.
	KindDuplicateCacheEntry Kind = "duplicate_cache_entry"
)

// Warning reports whether events of this kind signal a data problem rather
// than a normal decision.
func (k Kind) Warning() bool {
	switch k {
	case KindInserted, KindReplaced, KindSkipped:
		return false
	default:
		return true
	}
}

// Event is a single reconciliation decision or data-integrity signal.
type Event struct {
	Kind Kind `json:"kind"`

	// Name is the player name involved, if any.
	Name string `json:"name,omitempty"`

	// Old is the identifier that was previously recorded.
	Old identity.ID `json:"old,omitzero"`

	// New is the identifier carried by the incoming record.
	New identity.ID `json:"new,omitzero"`

	// Timestamp is the last-seen time of the incoming record.
	Timestamp int64 `json:"timestamp,omitempty"`

	// Source is where the record came from (a profile path or cache file).
	Source string `json:"source,omitempty"`

	// Detail holds a parse error or other free-form context.
	Detail string `json:"detail,omitempty"`
}

// Sink receives events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Tee returns a Sink that forwards each event to every non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}
