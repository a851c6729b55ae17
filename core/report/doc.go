// Package report carries the structured events produced while building the
// usermap.
//
// The reconciler and the cache codec never print anything themselves. Each
// decision (an insert, a replacement, a skipped record) and each non-fatal
// data problem (a malformed identifier, a duplicate cache entry) is emitted as
// an Event to a Sink. Callers pick the sink:
//
//   - Log collects events in memory (tests, JSON reports)
//   - ZapSink writes one structured log line per event
//   - Tee fans out to several sinks
package report
