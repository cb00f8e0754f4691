// Package board projects a room list into the four status columns of the
// housekeeping board. Pure functions only; rendering to a screen happens
// in the adapters.
package board

import (
	"strings"

	"github.com/example/housekeeping/internal/core/room"
)

// PriorityMarker is shown on cards flagged as priority.
const PriorityMarker = "⭐ VIP"

// Card is the projection of one room onto the board.
type Card struct {
	ID       int
	Number   string
	Status   string
	Staff    string
	Notes    string
	Priority bool
}

// Title is the card heading.
func (c Card) Title() string {
	return "Room " + c.Number
}

// HasNotes reports whether the card has a notes section.
func (c Card) HasNotes() bool {
	return strings.TrimSpace(c.Notes) != ""
}

// Column is one status bucket.
type Column struct {
	Status room.Status
	Cards  []Card
}

// Board is a full projection: every column plus its count.
type Board struct {
	Columns []Column
	Counts  map[room.Status]int
}

// columnOrder is the left-to-right layout of the board.
var columnOrder = []room.Status{
	room.StatusReady,
	room.StatusCleaning,
	room.StatusInspecting,
	room.StatusDirty,
}

// ColumnOrder returns the statuses in board layout order.
func ColumnOrder() []room.Status {
	out := make([]room.Status, len(columnOrder))
	copy(out, columnOrder)
	return out
}

// Build partitions cards into the four columns, keeping input order within
// each column. Cards whose status matches no column are dropped.
func Build(cards []Card) Board {
	index := make(map[room.Status]int, len(columnOrder))
	b := Board{
		Columns: make([]Column, len(columnOrder)),
		Counts:  make(map[room.Status]int, len(columnOrder)),
	}
	for i, st := range columnOrder {
		index[st] = i
		b.Columns[i] = Column{Status: st, Cards: []Card{}}
		b.Counts[st] = 0
	}

	for _, c := range cards {
		st, ok := room.ParseStatus(c.Status)
		if !ok {
			continue
		}
		i := index[st]
		b.Columns[i].Cards = append(b.Columns[i].Cards, c)
		b.Counts[st]++
	}

	return b
}

// Column returns the column for st.
func (b Board) Column(st room.Status) (Column, bool) {
	for _, c := range b.Columns {
		if c.Status == st {
			return c, true
		}
	}
	return Column{}, false
}

// Total returns the number of cards on the board.
func (b Board) Total() int {
	n := 0
	for _, c := range b.Counts {
		n += c
	}
	return n
}
