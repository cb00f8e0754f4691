package room

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // one of the Err* kinds when not allowed
}

// Error converts the guard result to an error if not allowed.
// The returned error wraps Kind.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// AddRoomContext provides context for room creation guards.
type AddRoomContext struct {
	Number       string
	NumberExists bool
}

// UpdateRoomContext provides context for room update guards.
type UpdateRoomContext struct {
	RoomID     int
	RoomExists bool
	Status     string
}

// RemoveRoomContext provides context for room removal guards.
type RemoveRoomContext struct {
	RoomID     int
	RoomExists bool
}

// CanAddRoom evaluates whether a room can be added.
// Rules:
// - Number must not be blank
// - Number must not already be on the board
func CanAddRoom(ctx AddRoomContext) GuardResult {
	number := strings.TrimSpace(ctx.Number)
	if number == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "number is blank",
			Kind:    ErrEmptyInput,
		}
	}

	if ctx.NumberExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("room %s is already on the board", number),
			Kind:    ErrDuplicateNumber,
		}
	}

	return GuardResult{Allowed: true}
}

// CanUpdateRoom evaluates whether a room can be updated.
// Rules:
// - Room must exist
// - Status must be one of the workflow statuses
func CanUpdateRoom(ctx UpdateRoomContext) GuardResult {
	if !ctx.RoomExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("room id %d", ctx.RoomID),
			Kind:    ErrNotFound,
		}
	}

	if _, ok := ParseStatus(ctx.Status); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q (want Dirty, Cleaning, Inspecting or Ready)", ctx.Status),
			Kind:    ErrInvalidStatus,
		}
	}

	return GuardResult{Allowed: true}
}

// CanRemoveRoom evaluates whether a room can be removed.
// Rules:
// - Room must exist
func CanRemoveRoom(ctx RemoveRoomContext) GuardResult {
	if !ctx.RoomExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("room id %d", ctx.RoomID),
			Kind:    ErrNotFound,
		}
	}

	return GuardResult{Allowed: true}
}
