// Package event defines the event record persisted by the event store.
//
// An Event describes a scheduled activity with an advisory capacity and an
// ordered roster of player ids. The package also provides:
//   - Draft: caller-supplied fields for creating an event
//   - Patch: a typed partial update restricted to mutable fields
//   - IDGenerator implementations (sequence, UUIDv7, fixed)
//   - Clock implementations (system, fixed)
//
// Wire format uses snake_case JSON keys. Optional fields (event_date,
// message_id) encode as null when absent; roster and media lists encode as
// empty arrays for freshly created events.
package event
