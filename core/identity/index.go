package identity

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NameIndex maps names to IDs, preserving insertion order.
// Overwriting an existing name keeps its original position.
type NameIndex struct {
	m *orderedmap.OrderedMap[string, ID]
}

// NewNameIndex returns an empty NameIndex.
func NewNameIndex() *NameIndex {
	return &NameIndex{m: orderedmap.New[string, ID]()}
}

// Get returns the ID mapped to name.
func (n *NameIndex) Get(name string) (ID, bool) {
	return n.m.Get(name)
}

// Set maps name to id and returns the previous ID, if any.
func (n *NameIndex) Set(name string, id ID) (ID, bool) {
	return n.m.Set(name, id)
}

// Len returns the number of names.
func (n *NameIndex) Len() int {
	return n.m.Len()
}

// Each calls fn for every entry, oldest first.
func (n *NameIndex) Each(fn func(name string, id ID)) {
	for pair := n.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Names returns all names in insertion order.
func (n *NameIndex) Names() []string {
	names := make([]string, 0, n.m.Len())
	n.Each(func(name string, _ ID) {
		names = append(names, name)
	})
	return names
}

// SeenIndex maps IDs to their last-seen timestamp, preserving insertion order.
type SeenIndex struct {
	m *orderedmap.OrderedMap[ID, int64]
}

// NewSeenIndex returns an empty SeenIndex.
func NewSeenIndex() *SeenIndex {
	return &SeenIndex{m: orderedmap.New[ID, int64]()}
}

// Get returns the timestamp recorded for id.
func (s *SeenIndex) Get(id ID) (int64, bool) {
	return s.m.Get(id)
}

// Has reports whether id has a timestamp.
func (s *SeenIndex) Has(id ID) bool {
	_, ok := s.m.Get(id)
	return ok
}

// Set records ts as the last-seen time of id.
func (s *SeenIndex) Set(id ID, ts int64) {
	s.m.Set(id, ts)
}

// Delete removes id and reports whether it was present.
func (s *SeenIndex) Delete(id ID) bool {
	_, ok := s.m.Delete(id)
	return ok
}

// Len returns the number of IDs.
func (s *SeenIndex) Len() int {
	return s.m.Len()
}

// Each calls fn for every entry, oldest first.
func (s *SeenIndex) Each(fn func(id ID, ts int64)) {
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Set is an insertion-ordered set of IDs.
type Set struct {
	m *orderedmap.OrderedMap[ID, struct{}]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{m: orderedmap.New[ID, struct{}]()}
}

// Add inserts id and reports whether it was newly added.
func (s *Set) Add(id ID) bool {
	_, present := s.m.Set(id, struct{}{})
	return !present
}

// Has reports whether id is in the set.
func (s *Set) Has(id ID) bool {
	_, ok := s.m.Get(id)
	return ok
}

// Len returns the number of IDs.
func (s *Set) Len() int {
	return s.m.Len()
}

// Each calls fn for every ID, oldest first.
func (s *Set) Each(fn func(id ID)) {
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key)
	}
}

// Slice returns the IDs in insertion order.
func (s *Set) Slice() []ID {
	ids := make([]ID, 0, s.m.Len())
	s.Each(func(id ID) {
		ids = append(ids, id)
	})
	return ids
}
