// Package room contains the pure business logic for housekeeping rooms.
// This is part of the Functional Core - no I/O, only pure functions.
package room

import "strings"

// Status is a room's position in the cleaning workflow.
type Status string

const (
	StatusDirty      Status = "Dirty"
	StatusCleaning   Status = "Cleaning"
	StatusInspecting Status = "Inspecting"
	StatusReady      Status = "Ready"
)

// DefaultStaff is stored when a room has nobody assigned.
const DefaultStaff = "Unassigned"

var workflow = []Status{StatusDirty, StatusCleaning, StatusInspecting, StatusReady}

// Statuses returns the workflow in order, Dirty first.
func Statuses() []Status {
	out := make([]Status, len(workflow))
	copy(out, workflow)
	return out
}

// InitialStatus returns the status every new room starts in.
func InitialStatus() Status {
	return StatusDirty
}

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range workflow {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Valid reports whether s is exactly one of the four workflow statuses.
func (s Status) Valid() bool {
	for _, st := range workflow {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the status after s, wrapping from Ready back to Dirty.
func (s Status) Next() Status {
	return shift(s, 1)
}

// Prev returns the status before s, wrapping from Dirty to Ready.
func (s Status) Prev() Status {
	return shift(s, -1)
}

func shift(s Status, by int) Status {
	for i, st := range workflow {
		if st == s {
			return workflow[(i+by+len(workflow))%len(workflow)]
		}
	}
	return InitialStatus()
}

// NormalizeStaff trims staff and substitutes DefaultStaff for blanks.
func NormalizeStaff(staff string) string {
	staff = strings.TrimSpace(staff)
	if staff == "" {
		return DefaultStaff
	}
	return staff
}
