// Package store provides file-based persistence for calculation history.
//
// It implements the domain.HistoryStore interface, serialising the record
// list as a single JSON document under the configured home directory. All
// methods are concurrency-safe via internal locking. A missing or
// unparseable file yields an empty store; read failures never surface past
// startup, and write failures are reported as domain.ErrPersistence while
// the in-memory list stays authoritative.
package store
