// Package reconcile resolves the canonical name -> identifier mapping from a
// stream of identity observations.
//
// A name may be claimed by several identifiers over time (an account that was
// migrated to a new identifier scheme, or a name released and taken by another
// player). The Reconciler keeps exactly one identifier per name:
//
//   - a higher identifier version always supersedes a lower one
//   - with equal versions, the more recently seen record wins
//   - with equal versions and equal timestamps, the first record is kept
//
// Superseded identifiers are dropped from the timestamp index, so every
// identifier mapped by a name also has a last-seen timestamp.
//
// # Architecture
//
// Observations come from an Adapter (for example, the userdata profile
// scanner). The Reconciler owns both indexes for the duration of one pass and
// emits every decision to a report.Sink.
//
// # Usage Example
//
//	r := reconcile.New(sink)
//	if err := r.Run(ctx, adapter); err != nil {
//	    return err
//	}
//	snap := r.Snapshot()
//	fmt.Println(snap.Names.Len(), snap.Seen.Len())
package reconcile
