// Package ledger holds the in-memory category store, transaction ledger and
// investment mini-ledger of a session, and mirrors every mutation to a
// storage.BlobStore before returning.
//
// Validation failures on add are expected user-input states: they are reported
// through a boolean result and never mutate state. Errors are reserved for
// persistence failures and for edits or removals of unknown ids, which return
// common.ErrNotFound.
package ledger
