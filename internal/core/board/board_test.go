package board

import (
	"testing"

	"github.com/example/housekeeping/internal/core/room"
)

func sampleCards() []Card {
	return []Card{
		{ID: 1, Number: "101", Status: "Dirty", Staff: "Maria", Notes: "Guest checkout morning"},
		{ID: 2, Number: "102", Status: "Cleaning", Staff: "John"},
		{ID: 3, Number: "103", Status: "Inspecting", Staff: "Sofia", Notes: "Check AC unit"},
		{ID: 4, Number: "104", Status: "Ready", Staff: "Maria"},
		{ID: 5, Number: "105", Status: "Ready", Staff: "Ahmed"},
		{ID: 6, Number: "201", Status: "Dirty", Staff: "Rosa", Notes: "VIP guest - messy room", Priority: true},
		{ID: 7, Number: "202", Status: "Cleaning", Staff: "Sofia"},
		{ID: 8, Number: "203", Status: "Ready", Staff: "John"},
	}
}

func TestBuild_Counts(t *testing.T) {
	b := Build(sampleCards())

	want := map[room.Status]int{
		room.StatusReady:      3,
		room.StatusCleaning:   2,
		room.StatusInspecting: 1,
		room.StatusDirty:      2,
	}
	for st, n := range want {
		if b.Counts[st] != n {
			t.Errorf("Counts[%s] = %d, want %d", st, b.Counts[st], n)
		}
	}
	if b.Total() != 8 {
		t.Errorf("Total() = %d, want 8", b.Total())
	}
}

func TestBuild_ColumnOrderAndCardOrder(t *testing.T) {
	b := Build(sampleCards())

	if len(b.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(b.Columns))
	}
	for i, st := range ColumnOrder() {
		if b.Columns[i].Status != st {
			t.Errorf("column %d = %s, want %s", i, b.Columns[i].Status, st)
		}
	}

	ready, _ := b.Column(room.StatusReady)
	got := []string{}
	for _, c := range ready.Cards {
		got = append(got, c.Number)
	}
	want := []string{"104", "105", "203"}
	if len(got) != len(want) {
		t.Fatalf("ready cards = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ready cards = %v, want %v", got, want)
		}
	}
}

func TestBuild_StatusCaseInsensitiveAndUnknownDropped(t *testing.T) {
	b := Build([]Card{
		{ID: 1, Number: "1", Status: "dirty"},
		{ID: 2, Number: "2", Status: "READY"},
		{ID: 3, Number: "3", Status: "Occupied"},
	})

	if b.Counts[room.StatusDirty] != 1 || b.Counts[room.StatusReady] != 1 {
		t.Errorf("unexpected counts %v", b.Counts)
	}
	if b.Total() != 2 {
		t.Errorf("unknown status should be discarded, total = %d", b.Total())
	}
}

func TestBuild_EmptyStillHasAllColumns(t *testing.T) {
	b := Build(nil)
	for _, st := range ColumnOrder() {
		col, ok := b.Column(st)
		if !ok {
			t.Fatalf("missing column %s", st)
		}
		if col.Cards == nil || len(col.Cards) != 0 {
			t.Errorf("column %s should be empty, not nil", st)
		}
		if n, ok := b.Counts[st]; !ok || n != 0 {
			t.Errorf("Counts[%s] = %d (present %v), want 0", st, n, ok)
		}
	}
}

func TestCard_TitleAndNotes(t *testing.T) {
	c := Card{Number: "305", Notes: "  "}
	if c.Title() != "Room 305" {
		t.Errorf("Title() = %q", c.Title())
	}
	if c.HasNotes() {
		t.Error("blank notes should not render a notes section")
	}
}
