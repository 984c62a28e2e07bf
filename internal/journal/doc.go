// Package journal keeps a SQLite log of committed event-store mutations.
//
// The store hands every successful create, update, delete, roster or media
// change and whole-collection save to Record, which appends one row holding
// the operation, the event id, the collection size and a JSON snapshot of
// the record after the write. The JSON document stays the source of truth;
// the journal only answers `eventbot history`.
//
// Rows are read back in seq order. recorded_at comes from the store's clock
// and may repeat, so it is never used for ordering.
//
// The file runs in WAL mode with synchronous=NORMAL and a 5s busy timeout,
// so a `history` call can read while `start` is writing.
package journal
