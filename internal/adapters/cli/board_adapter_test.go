package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/housekeeping/internal/core/board"
)

func sampleBoard() board.Board {
	return board.Build([]board.Card{
		{ID: 1, Number: "101", Status: "Dirty", Staff: "Maria", Notes: "Guest checkout morning"},
		{ID: 2, Number: "102", Status: "Cleaning", Staff: "John"},
		{ID: 4, Number: "104", Status: "Ready", Staff: "Maria"},
		{ID: 6, Number: "201", Status: "Dirty", Staff: "Rosa", Priority: true},
	})
}

func TestBoardAdapter_RenderBoard(t *testing.T) {
	var buf bytes.Buffer
	NewBoardAdapter(&buf).Render(sampleBoard())

	output := buf.String()
	for _, want := range []string{
		"Ready (1)", "Cleaning (1)", "Inspecting (0)", "Dirty (2)",
		"Room 101", "Room 201", "Maria", board.PriorityMarker, "No rooms",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("board missing %q:\n%s", want, output)
		}
	}

	// layout order is Ready, Cleaning, Inspecting, Dirty
	first := strings.Split(output, "\n")
	var header string
	for _, line := range first {
		if strings.Contains(line, "Ready (") {
			header = line
			break
		}
	}
	r := strings.Index(header, "Ready")
	c := strings.Index(header, "Cleaning")
	i := strings.Index(header, "Inspecting")
	d := strings.Index(header, "Dirty")
	if !(r < c && c < i && i < d) {
		t.Errorf("unexpected column order in %q", header)
	}
}

func TestBoardAdapter_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	NewSummaryAdapter(&buf).Render(sampleBoard())

	want := "Ready: 1 · Cleaning: 1 · Inspecting: 0 · Dirty: 2 (4 rooms)\n"
	if buf.String() != want {
		t.Errorf("summary = %q, want %q", buf.String(), want)
	}
}

func TestBoardAdapter_EmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	NewBoardAdapter(&buf).Render(board.Build(nil))

	output := buf.String()
	if !strings.Contains(output, "Ready (0)") || !strings.Contains(output, "(0 rooms)") {
		t.Errorf("unexpected empty board:\n%s", output)
	}
}

func TestCardView(t *testing.T) {
	plain := CardView(board.Card{Number: "104", Staff: "Maria"}, false)
	if strings.Contains(plain, board.PriorityMarker) {
		t.Error("non-priority card should not show marker")
	}
	if !strings.Contains(plain, "Room 104") {
		t.Errorf("card missing title: %q", plain)
	}

	selected := CardView(board.Card{Number: "104", Staff: "Maria", Notes: "extra towels"}, true)
	if !strings.Contains(selected, "▶ Room 104") {
		t.Errorf("selected card missing marker: %q", selected)
	}
	if !strings.Contains(selected, "extra towels") {
		t.Errorf("card missing notes: %q", selected)
	}
}
