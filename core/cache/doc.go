// Package cache encodes and decodes the binary usermap caches.
//
// Two files live side by side in the cache directory:
//
//   - usermap.bin: repeated [u16 length][modified UTF-8 name][u64 msb][u64 lsb]
//   - uuids.bin:   repeated [u64 msb][u64 lsb]
//
// All integers are big-endian. Neither file carries a record count; readers
// consume records until end of file. A file that ends inside a record is
// corrupt and fails the whole load.
//
// Names are written in the modified UTF-8 form used by Java's
// DataOutput.writeUTF (NUL as 0xC0 0x80, supplementary characters as
// surrogate pairs) so caches written by the game server load unchanged.
//
// # Conflict policy
//
// Decoding applies no tie-break: when a name appears twice, the later record
// wins and a KindReplacedDuringLoad event is emitted. Duplicate identifiers in
// uuids.bin emit KindDuplicateCacheEntry. Both are data-integrity signals only.
//
// # Ordering
//
// Encoding writes entries in the insertion order of the identity indexes, so
// Save(Load(dir)) reproduces the original bytes when names and identifiers are
// unique.
package cache
