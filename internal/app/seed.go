package app

import "github.com/example/housekeeping/internal/ports/secondary"

// SampleRooms returns the fixed board a fresh install starts with.
func SampleRooms() []*secondary.RoomRecord {
	rooms := []struct {
		id       int
		number   string
		status   string
		staff    string
		notes    string
		priority bool
	}{
		{1, "101", "Dirty", "Maria", "Guest checkout morning", false},
		{2, "102", "Cleaning", "John", "", false},
		{3, "103", "Inspecting", "Sofia", "Check AC unit", false},
		{4, "104", "Ready", "Maria", "", false},
		{5, "105", "Ready", "Ahmed", "", false},
		{6, "201", "Dirty", "Rosa", "VIP guest - messy room", true},
		{7, "202", "Cleaning", "Sofia", "", false},
		{8, "203", "Ready", "John", "", false},
	}

	out := make([]*secondary.RoomRecord, len(rooms))
	for i, r := range rooms {
		out[i] = &secondary.RoomRecord{
			ID:       r.id,
			Number:   r.number,
			Status:   r.status,
			Staff:    r.staff,
			Notes:    r.notes,
			Priority: r.priority,
		}
	}
	return out
}
