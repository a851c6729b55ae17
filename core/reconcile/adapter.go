package reconcile

import (
	"context"

	"usermap-reconciler/core/report"
)

// Adapter supplies observations to the Reconciler.
// Each adapter implements how to discover and decode records from one kind of
// source (e.g., a directory of per-user profile files).
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "userdata").
	Name() string

	// Observations returns every well-formed observation of the source.
	// Records that cannot be decoded are reported to sink and skipped.
	// An error means the source as a whole is unusable and aborts the pass.
	Observations(ctx context.Context, sink report.Sink) ([]Observation, error)
}
