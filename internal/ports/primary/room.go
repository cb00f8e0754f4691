package primary

import "context"

// RoomService defines the primary port for the room repository.
// It owns the in-memory room list; every mutation writes a full
// snapshot to the store before returning.
type RoomService interface {
	// Open rehydrates the list from storage, seeding the sample rooms
	// when storage is empty and seed is true.
	Open(ctx context.Context, seed bool) error

	// AddRoom creates a new room in the Dirty status.
	AddRoom(ctx context.Context, req AddRoomRequest) (*Room, error)

	// GetRoom retrieves a room by ID.
	GetRoom(ctx context.Context, roomID int) (*Room, error)

	// UpdateRoom replaces the mutable fields of a room.
	UpdateRoom(ctx context.Context, req UpdateRoomRequest) (*Room, error)

	// RemoveRoom deletes a room.
	RemoveRoom(ctx context.Context, roomID int) error

	// ClearRooms deletes every room.
	ClearRooms(ctx context.Context) error

	// ListRooms returns all rooms ordered by room number.
	ListRooms(ctx context.Context) []*Room
}

// AddRoomRequest contains parameters for adding a room.
type AddRoomRequest struct {
	Number   string
	Staff    string
	Notes    string
	Priority bool
}

// UpdateRoomRequest contains the new values of a room's mutable fields.
type UpdateRoomRequest struct {
	RoomID   int
	Status   string
	Staff    string
	Notes    string
	Priority bool
}

// Room represents a room at the port boundary.
type Room struct {
	ID       int
	Number   string
	Status   string
	Staff    string
	Notes    string
	Priority bool
}
