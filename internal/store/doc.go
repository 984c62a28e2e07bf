// Package store provides flat-file durable storage for event records.
//
// The whole collection lives in one pretty-printed JSON document:
//
//	{
//	  "events": [ {...}, {...} ]
//	}
//
// next to a media directory that holds attachment files referenced by
// event.Event.MediaFiles. The store never reads those files.
//
// # Access Pattern
//
// Every operation reloads the entire document, mutates it in memory and, for
// mutating operations, rewrites the entire document. There is no cache,
// index or lock:
//   - Concurrent writers race and the last full rewrite wins (lost update)
//   - A crash between truncate and write can leave a truncated document
//   - Lookups are linear scans in insertion order
//
// # Result Conventions
//
//   - A missing event is never an error: lookups return ok=false and
//     mutations return false without writing
//   - AddPlayer and RemovePlayer also return false when their precondition
//     fails (duplicate add, absent remove); callers cannot tell that apart
//     from a missing event
//   - Errors are reserved for ErrCorrupt and *StorageError
//
// # Hooks
//
// A Journal receives one Mutation per committed write and a Recorder
// observes every operation's outcome and latency. Both are optional.
package store
