package secondary

import "context"

// SnapshotStore defines the secondary port for room persistence.
// The whole room list lives under a single key; there are no partial
// writes.
type SnapshotStore interface {
	// Load reads the stored snapshot. A missing or unparseable snapshot
	// yields an empty list and a nil error; only backend failures are
	// returned as errors.
	Load(ctx context.Context) ([]*RoomRecord, error)

	// Save overwrites the stored snapshot with rooms.
	Save(ctx context.Context, rooms []*RoomRecord) error
}

// RoomRecord represents a room as stored in a snapshot.
// The JSON field names are the persisted format.
type RoomRecord struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Status   string `json:"status"`
	Staff    string `json:"staff"`
	Notes    string `json:"notes"`
	Priority bool   `json:"priority"`
}
