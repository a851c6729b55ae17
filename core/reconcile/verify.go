package reconcile

import (
	"errors"
	"fmt"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"
)

// ErrInconsistent is returned by Verify when a mapped identifier has no
// last-seen timestamp.
var ErrInconsistent = errors.New("usermap inconsistent")

// Verify checks that every identifier mapped by a name is present in the
// timestamp index. It reports every violating name.
func (r *Reconciler) Verify() error {
	return r.Snapshot().Verify()
}

// CheckConsistency emits a KindUnseenIdentifier event for every name whose
// identifier has no timestamp and returns how many it found. The maps are
// left as they are.
func (r *Reconciler) CheckConsistency() int {
	unseen := r.Snapshot().Unseen()
	for _, name := range unseen {
		id, _ := r.names.Get(name)
		r.sink.Emit(report.Event{
			Kind:   report.KindUnseenIdentifier,
			Name:   name,
			New:    id,
			Detail: "identifier has no last-seen timestamp",
		})
	}
	return len(unseen)
}

// Unseen returns the names whose identifier is missing from the timestamp
// index, in mapping order.
func (s Snapshot) Unseen() []string {
	var names []string
	s.Names.Each(func(name string, id identity.ID) {
		if !s.Seen.Has(id) {
			names = append(names, name)
		}
	})
	return names
}

// Verify checks the snapshot's consistency.
func (s Snapshot) Verify() error {
	var errs []error
	for _, name := range s.Unseen() {
		id, _ := s.Names.Get(name)
		errs = append(errs, fmt.Errorf("%w: %q maps to %s which has no timestamp", ErrInconsistent, name, id))
	}
	return errors.Join(errs...)
}
