// Package identity defines the player identity data model.
//
// An ID is a 128-bit UUID carrying a version nibble. Names are the display
// names players log in with. The package also provides the insertion-ordered
// indexes the reconciler and the cache codec share:
//
//   - NameIndex: name -> ID (the canonical mapping)
//   - SeenIndex: ID -> last-seen timestamp
//   - Set: raw IDs, used for existence and duplicate tracking
//
// Go maps do not preserve insertion order, so every index is backed by an
// ordered map. Iteration always yields entries oldest first, which keeps
// cache encoding deterministic.
package identity
