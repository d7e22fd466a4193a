// Package history records applied retiming runs in a local SQLite ledger.
//
// The store follows a strict schema-version check: a database created by a
// different version is rejected rather than migrated, since the ledger is
// advisory and cheap to clear. First-run schema creation is serialized with
// a file lock so concurrent CLI invocations do not race.
package history
