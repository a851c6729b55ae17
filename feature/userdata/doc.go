// Package userdata reads observations from a directory of per-user profile
// files.
//
// Each player has one YAML profile named after their identifier, e.g.
// "069a79f4-44e9-4726-a5be-fca90e38aaf5.yml". The adapter reads two fields:
//
//	last-account-name: notch
//	timestamps:
//	  logout: 1700000000000
//
// A missing logout timestamp counts as 0. A profile without an account name,
// with an unparseable file name, or with invalid YAML is reported as a warning
// event and skipped; the rest of the directory is still read.
//
// Adapter implements reconcile.Adapter.
package userdata
