package history

import "context"

// Store defines persistence operations for the activity log.
//
// Load never fails: absent, unreadable, or corrupt persisted state degrades
// to the empty default and is logged by the implementation. Mutations return
// write errors so callers can log or surface them; a failed write keeps the
// previously persisted state, so the mutation is not visible to the next
// Load.
type Store interface {
	// Load returns the full persisted state.
	Load(ctx context.Context) State
	// Add prepends a new record to category c, trims the sequence to the
	// configured maximum, persists, and returns the new record's ID.
	Add(ctx context.Context, c Category, d Details) (string, error)
	// Remove deletes the record with the given ID from category c and
	// persists. A missing ID is a no-op, not an error.
	Remove(ctx context.Context, c Category, id string) error
	// Clear removes all records from category c and persists.
	Clear(ctx context.Context, c Category) error
}
