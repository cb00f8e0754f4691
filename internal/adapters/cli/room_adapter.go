package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/housekeeping/internal/core/board"
	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/ports/primary"
)

// RoomAdapter is a thin adapter that translates CLI read operations to
// RoomService calls. Mutations go through the interaction controller.
type RoomAdapter struct {
	service primary.RoomService
	out     io.Writer
}

// NewRoomAdapter creates a new RoomAdapter with the given service.
func NewRoomAdapter(service primary.RoomService, out io.Writer) *RoomAdapter {
	return &RoomAdapter{
		service: service,
		out:     out,
	}
}

// List lists rooms, optionally only those in status.
func (a *RoomAdapter) List(ctx context.Context, status string) ([]*primary.Room, error) {
	rooms := a.service.ListRooms(ctx)

	if status != "" {
		st, ok := coreroom.ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", coreroom.ErrInvalidStatus, status)
		}
		filtered := make([]*primary.Room, 0, len(rooms))
		for _, r := range rooms {
			if r.Status == string(st) {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}

	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No rooms found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first room:")
		fmt.Fprintln(a.out, "  housekeeping room add 101 --staff Maria")
		return rooms, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tROOM\tSTATUS\tSTAFF\tNOTES")
	fmt.Fprintln(w, "--\t----\t------\t-----\t-----")

	for _, r := range rooms {
		number := r.Number
		if r.Priority {
			number += " " + board.PriorityMarker
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			number,
			StatusBadge(r.Status),
			r.Staff,
			r.Notes,
		)
	}

	w.Flush()
	return rooms, nil
}

// Show displays details for a single room.
func (a *RoomAdapter) Show(ctx context.Context, roomID int) (*primary.Room, error) {
	r, err := a.service.GetRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	fmt.Fprintf(a.out, "\nRoom %s (id %d)\n", r.Number, r.ID)
	fmt.Fprintf(a.out, "Status:   %s\n", StatusBadge(r.Status))
	fmt.Fprintf(a.out, "Staff:    %s\n", r.Staff)
	if r.Priority {
		fmt.Fprintf(a.out, "Priority: %s\n", board.PriorityMarker)
	}
	if r.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", r.Notes)
	}
	fmt.Fprintln(a.out)

	return r, nil
}

// StatusBadge colors a status for terminal output.
func StatusBadge(status string) string {
	st, _ := coreroom.ParseStatus(status)
	switch st {
	case coreroom.StatusReady:
		return color.New(color.FgGreen).Sprint(status)
	case coreroom.StatusCleaning:
		return color.New(color.FgBlue).Sprint(status)
	case coreroom.StatusInspecting:
		return color.New(color.FgYellow).Sprint(status)
	case coreroom.StatusDirty:
		return color.New(color.FgRed).Sprint(status)
	default:
		return status
	}
}
