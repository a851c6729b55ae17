// Package usermap ties the identity pipeline together for the CLI.
//
// Two runs are supported:
//
//   - Build: read every userdata profile, reconcile names and identifiers,
//     and optionally persist the result as binary caches or a database table.
//   - Dump: decode existing usermap.bin and uuids.bin caches.
//
// Both produce a Result that the reporting helpers print as "name => uuid"
// lines followed by summary counts, or save as a JSON report.
package usermap
