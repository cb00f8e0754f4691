package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/housekeeping/internal/core/board"
	coreroom "github.com/example/housekeeping/internal/core/room"
)

// ColumnWidth is the rendered width of one board column.
const ColumnWidth = 26

// statusColors maps each column to its header color.
var statusColors = map[coreroom.Status]lipgloss.Color{
	coreroom.StatusReady:      lipgloss.Color("42"),
	coreroom.StatusCleaning:   lipgloss.Color("39"),
	coreroom.StatusInspecting: lipgloss.Color("214"),
	coreroom.StatusDirty:      lipgloss.Color("196"),
}

var (
	columnStyle = lipgloss.NewStyle().
			Width(ColumnWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Width(ColumnWidth-4).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("238"))

	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	staffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	notesStyle    = lipgloss.NewStyle().Italic(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// BoardAdapter writes the board as text.
// It implements interaction.Renderer.
type BoardAdapter struct {
	out         io.Writer
	summaryOnly bool
}

// NewBoardAdapter creates a BoardAdapter that draws the full board.
func NewBoardAdapter(out io.Writer) *BoardAdapter {
	return &BoardAdapter{out: out}
}

// NewSummaryAdapter creates a BoardAdapter that only prints the counts line.
func NewSummaryAdapter(out io.Writer) *BoardAdapter {
	return &BoardAdapter{out: out, summaryOnly: true}
}

// Render draws b.
func (a *BoardAdapter) Render(b board.Board) {
	if !a.summaryOnly {
		a.RenderBoard(b)
	}
	a.RenderSummary(b)
}

// RenderBoard writes the four columns side by side.
func (a *BoardAdapter) RenderBoard(b board.Board) {
	fmt.Fprintln(a.out, BoardView(b, -1, -1))
}

// RenderSummary writes the per-status counts on one line.
func (a *BoardAdapter) RenderSummary(b board.Board) {
	fmt.Fprintln(a.out, Summary(b))
}

// Summary returns the counts line, e.g. "Ready: 3 · Cleaning: 2 · ... (8 rooms)".
func Summary(b board.Board) string {
	parts := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		parts = append(parts, fmt.Sprintf("%s: %d", col.Status, b.Counts[col.Status]))
	}
	return fmt.Sprintf("%s (%d rooms)", strings.Join(parts, " · "), b.Total())
}

// ColumnHeader returns the heading of a column, e.g. "Ready (3)".
func ColumnHeader(col board.Column) string {
	return fmt.Sprintf("%s (%d)", col.Status, len(col.Cards))
}

// BoardView lays out every column. The card at (selCol, selCard) is
// highlighted; pass -1 for no selection.
func BoardView(b board.Board, selCol, selCard int) string {
	cols := make([]string, 0, len(b.Columns))
	for i, col := range b.Columns {
		sel := -1
		if i == selCol {
			sel = selCard
		}
		cols = append(cols, ColumnView(col, sel))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// ColumnView renders one column with its header and cards.
func ColumnView(col board.Column, selCard int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColors[col.Status]).
		Render(ColumnHeader(col))

	lines := []string{header, ""}
	if len(col.Cards) == 0 {
		lines = append(lines, emptyStyle.Render("No rooms"))
	}
	for i, c := range col.Cards {
		lines = append(lines, CardView(c, i == selCard))
	}
	return columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// CardView renders a single card: title, staff, priority marker and notes.
func CardView(c board.Card, selected bool) string {
	title := c.Title()
	if selected {
		title = "▶ " + title
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Render(title)}
	lines = append(lines, staffStyle.Render("👤 "+c.Staff))
	if c.Priority {
		lines = append(lines, priorityStyle.Render(board.PriorityMarker))
	}
	if c.HasNotes() {
		lines = append(lines, notesStyle.Render(c.Notes))
	}

	style := cardStyle
	if selected {
		style = style.Foreground(lipgloss.Color("229")).BorderForeground(lipgloss.Color("229"))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
