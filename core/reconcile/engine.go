package reconcile

import (
	"context"
	"fmt"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"
)

// Reconciler builds the canonical name mapping from observations.
// It is not safe for concurrent use.
type Reconciler struct {
	names   *identity.NameIndex
	seen    *identity.SeenIndex
	sink    report.Sink
	summary Summary
}

// New creates an empty Reconciler emitting its decisions to sink.
// A nil sink discards events.
func New(sink report.Sink) *Reconciler {
	return &Reconciler{
		names: identity.NewNameIndex(),
		seen:  identity.NewSeenIndex(),
		sink:  report.OrDiscard(sink),
	}
}

// Ingest applies one observation and returns the decision it produced
// (KindInserted, KindReplaced or KindSkipped). An invalid name is reported as
// a separate warning but the observation is still applied under that name.
func (r *Reconciler) Ingest(obs Observation) report.Event {
	r.summary.Observations++

	if !identity.ValidName(obs.Name) {
		r.summary.InvalidNames++
		r.sink.Emit(report.Event{
			Kind:   report.KindInvalidName,
			Name:   obs.Name,
			New:    obs.ID,
			Source: obs.Source,
		})
	}

	event := report.Event{
		Kind:      report.KindInserted,
		Name:      obs.Name,
		New:       obs.ID,
		Timestamp: obs.LastSeen,
		Source:    obs.Source,
	}

	if old, exists := r.names.Get(obs.Name); exists {
		event.Old = old
		if !r.supersedes(old, obs) {
			event.Kind = report.KindSkipped
			r.summary.Skipped++
			r.sink.Emit(event)
			return event
		}
		r.seen.Delete(old)
		event.Kind = report.KindReplaced
		r.summary.Replaced++
	} else {
		r.summary.Inserted++
	}

	r.seen.Set(obs.ID, obs.LastSeen)
	r.names.Set(obs.Name, obs.ID)
	r.sink.Emit(event)
	return event
}

// supersedes reports whether obs should replace the record held by old.
// Higher versions win; equal versions fall back to a strictly newer timestamp.
func (r *Reconciler) supersedes(old identity.ID, obs Observation) bool {
	oldVersion, newVersion := old.Version(), obs.ID.Version()
	if oldVersion != newVersion {
		return oldVersion < newVersion
	}
	// old may be missing from seen when it was dropped while still named by
	// another name; it then counts as never seen.
	oldSeen, _ := r.seen.Get(old)
	return oldSeen < obs.LastSeen
}

// IngestAll applies observations in order.
func (r *Reconciler) IngestAll(observations []Observation) {
	for _, obs := range observations {
		r.Ingest(obs)
	}
}

// Run loads every observation from adapter and ingests them.
func (r *Reconciler) Run(ctx context.Context, adapter Adapter) error {
	observations, err := adapter.Observations(ctx, r.sink)
	if err != nil {
		return fmt.Errorf("failed to load observations from %s: %w", adapter.Name(), err)
	}
	r.IngestAll(observations)
	return nil
}

// Snapshot returns the current indexes. The indexes are shared, not copied.
func (r *Reconciler) Snapshot() Snapshot {
	return Snapshot{Names: r.names, Seen: r.seen}
}

// Summary returns the decision counts so far.
func (r *Reconciler) Summary() Summary {
	return r.summary
}
