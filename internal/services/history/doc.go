// Package history assembles and retains calculation records.
//
// It assigns record identity and timestamps, enforces the persistence-failure
// policy (log and carry on in memory), and exposes lookups for the CLI and
// the HTTP daemon.
package history
