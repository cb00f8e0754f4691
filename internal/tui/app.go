// Package tui is the interactive housekeeping board.
//
// The App is a bubbletea model over an interaction.Controller. The
// controller asks its Prompter for confirmation synchronously, which a
// bubbletea program cannot do mid-Update, so the App shows its own y/n
// dialog first and then calls the controller with the answer preloaded.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	cliadapter "github.com/example/housekeeping/internal/adapters/cli"
	"github.com/example/housekeeping/internal/core/board"
	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/interaction"
	"github.com/example/housekeeping/internal/ports/primary"
)

// screen is what the App is currently showing
type screen int

const (
	screenBoard   screen = iota // four columns, card selection
	screenEdit                  // edit modal for the open room
	screenAdd                   // add-room form
	screenConfirm               // y/n dialog
)

// fields of the edit modal and the add form, in tab order
const (
	fieldNumber = iota
	fieldStatus
	fieldStaff
	fieldNotes
	fieldPriority
)

var (
	editFields = []int{fieldStatus, fieldStaff, fieldNotes, fieldPriority}
	addFields  = []int{fieldNumber, fieldStaff, fieldNotes, fieldPriority}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(1, 2).
			Width(48)
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	labelStyle = lipgloss.NewStyle().Width(10)
)

// preanswered is the Prompter handed to the controller. Confirm returns
// whatever the App's own dialog collected.
type preanswered struct {
	app    *App
	answer bool
}

func (p *preanswered) Confirm(msg string) bool {
	return p.answer
}

func (p *preanswered) Notify(msg string) {
	p.app.statusMsg = msg
}

// App is the bubbletea model for the board.
type App struct {
	ctx      context.Context
	ctrl     *interaction.Controller
	prompter *preanswered
	logger   *zap.Logger
	roster   []string

	screen  screen
	board   board.Board
	selCol  int
	selCard int

	// edit modal
	modal      interaction.ModalFields
	editFocus  int
	notesInput textinput.Model

	// add form
	addFocus    int
	numberInput textinput.Model
	addNotes    textinput.Model
	addStaff    string
	addPriority bool

	// confirmation dialog
	confirmMsg    string
	confirmAction func() error
	confirmReturn screen

	statusMsg string
	width     int
	height    int
}

// NewApp creates the board model and draws the initial board.
// roster is the staff list offered in the forms.
func NewApp(ctx context.Context, rooms primary.RoomService, roster []string, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		ctx:         ctx,
		logger:      logger,
		roster:      roster,
		notesInput:  newInput("notes", 120),
		numberInput: newInput("e.g. 301", 16),
		addNotes:    newInput("notes", 120),
		addStaff:    coreroom.DefaultStaff,
	}
	a.prompter = &preanswered{app: a}
	a.ctrl = interaction.NewController(rooms, a.prompter, a, logger)
	a.ctrl.Refresh(ctx)
	return a
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	return ti
}

// Render implements interaction.Renderer.
func (a *App) Render(b board.Board) {
	a.board = b
	a.clampSelection()
}

// Controller returns the underlying interaction controller.
func (a *App) Controller() *interaction.Controller {
	return a.ctrl
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case screenBoard:
			return a.updateBoard(msg)
		case screenEdit:
			return a.updateEdit(msg)
		case screenAdd:
			return a.updateAdd(msg)
		case screenConfirm:
			return a.updateConfirm(msg)
		}
	}
	return a, nil
}

func (a *App) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "left", "h":
		a.selCol--
		a.selCard = 0
		a.clampSelection()
	case "right", "l":
		a.selCol++
		a.selCard = 0
		a.clampSelection()
	case "up", "k":
		a.selCard--
		a.clampSelection()
	case "down", "j":
		a.selCard++
		a.clampSelection()
	case "r":
		a.ctrl.Refresh(a.ctx)
	case "enter":
		card, ok := a.selectedCard()
		if !ok {
			return a, nil
		}
		fields, ok := a.ctrl.OpenRoom(a.ctx, card.ID)
		if !ok {
			a.ctrl.Refresh(a.ctx)
			return a, nil
		}
		a.openModal(fields)
		return a, a.focusEdit()
	case "a":
		a.screen = screenAdd
		a.addFocus = 0
		return a, a.focusAdd()
	case "C":
		a.askConfirm(interaction.ConfirmClearAll, func() error {
			return a.ctrl.ClearAll(a.ctx)
		})
	}
	return a, nil
}

func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := editFields[a.editFocus]
	key := msg.String()

	switch key {
	case "esc":
		a.ctrl.Close()
		a.screen = screenBoard
		a.notesInput.Blur()
		return a, nil
	case "tab", "down":
		a.editFocus = (a.editFocus + 1) % len(editFields)
		return a, a.focusEdit()
	case "shift+tab", "up":
		a.editFocus = (a.editFocus + len(editFields) - 1) % len(editFields)
		return a, a.focusEdit()
	case "enter":
		return a, a.submitUpdate()
	}

	if field == fieldNotes {
		var cmd tea.Cmd
		a.notesInput, cmd = a.notesInput.Update(msg)
		return a, cmd
	}

	switch key {
	case "u":
		return a, a.submitUpdate()
	case "d":
		a.askConfirm(interaction.ConfirmDeleteRoom, func() error {
			return a.ctrl.Delete(a.ctx)
		})
	case "left", "h", "right", "l":
		step := 1
		if key == "left" || key == "h" {
			step = -1
		}
		switch field {
		case fieldStatus:
			a.modal.Status = cycleStatus(a.modal.Status, step)
		case fieldStaff:
			a.modal.Staff = cycle(a.staffOptions(a.modal.Staff), a.modal.Staff, step)
		}
	case " ", "space":
		if field == fieldPriority {
			a.modal.Priority = !a.modal.Priority
		}
	}
	return a, nil
}

func (a *App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := addFields[a.addFocus]
	key := msg.String()

	switch key {
	case "esc":
		a.screen = screenBoard
		a.numberInput.Blur()
		a.addNotes.Blur()
		return a, nil
	case "tab", "down":
		a.addFocus = (a.addFocus + 1) % len(addFields)
		return a, a.focusAdd()
	case "shift+tab", "up":
		a.addFocus = (a.addFocus + len(addFields) - 1) % len(addFields)
		return a, a.focusAdd()
	case "enter":
		return a, a.submitAdd()
	}

	var cmd tea.Cmd
	switch field {
	case fieldNumber:
		a.numberInput, cmd = a.numberInput.Update(msg)
	case fieldNotes:
		a.addNotes, cmd = a.addNotes.Update(msg)
	case fieldStaff:
		switch key {
		case "left", "h":
			a.addStaff = cycle(a.staffOptions(a.addStaff), a.addStaff, -1)
		case "right", "l":
			a.addStaff = cycle(a.staffOptions(a.addStaff), a.addStaff, 1)
		}
	case fieldPriority:
		if key == " " || key == "space" {
			a.addPriority = !a.addPriority
		}
	}
	return a, cmd
}

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.prompter.answer = true
		err := a.confirmAction()
		a.prompter.answer = false
		a.confirmAction = nil
		if err != nil {
			a.logger.Warn("confirmed action failed", zap.Error(err))
		}
		a.screen = a.screenAfterAction()
	case "n", "N", "esc":
		a.confirmAction = nil
		a.screen = a.confirmReturn
	}
	return a, nil
}

func (a *App) askConfirm(msg string, action func() error) {
	a.confirmMsg = msg
	a.confirmAction = action
	a.confirmReturn = a.screen
	a.screen = screenConfirm
}

func (a *App) submitUpdate() tea.Cmd {
	a.modal.Notes = a.notesInput.Value()
	if err := a.ctrl.SubmitUpdate(a.ctx, a.modal); err != nil {
		a.logger.Debug("update rejected", zap.Error(err))
	}
	a.screen = a.screenAfterAction()
	if a.screen == screenBoard {
		a.notesInput.Blur()
	}
	return nil
}

func (a *App) submitAdd() tea.Cmd {
	in := interaction.FormFields{
		Number:   a.numberInput.Value(),
		Staff:    a.addStaff,
		Notes:    a.addNotes.Value(),
		Priority: a.addPriority,
	}
	out, err := a.ctrl.SubmitAdd(a.ctx, in)
	if err != nil {
		a.logger.Debug("add rejected", zap.Error(err))
		return nil
	}

	a.numberInput.SetValue(out.Number)
	a.addNotes.SetValue(out.Notes)
	a.addStaff = coreroom.NormalizeStaff(out.Staff)
	a.addPriority = out.Priority
	a.numberInput.Blur()
	a.addNotes.Blur()
	a.screen = screenBoard
	return nil
}

// screenAfterAction follows the controller: an open room keeps the modal.
func (a *App) screenAfterAction() screen {
	if a.ctrl.State() == interaction.StateEditing {
		return screenEdit
	}
	return screenBoard
}

func (a *App) openModal(fields interaction.ModalFields) {
	a.modal = fields
	a.notesInput.SetValue(fields.Notes)
	a.editFocus = 0
	a.screen = screenEdit
}

func (a *App) focusEdit() tea.Cmd {
	if editFields[a.editFocus] == fieldNotes {
		return a.notesInput.Focus()
	}
	a.notesInput.Blur()
	return nil
}

func (a *App) focusAdd() tea.Cmd {
	a.numberInput.Blur()
	a.addNotes.Blur()
	switch addFields[a.addFocus] {
	case fieldNumber:
		return a.numberInput.Focus()
	case fieldNotes:
		return a.addNotes.Focus()
	}
	return nil
}

func (a *App) selectedCard() (board.Card, bool) {
	if a.selCol < 0 || a.selCol >= len(a.board.Columns) {
		return board.Card{}, false
	}
	cards := a.board.Columns[a.selCol].Cards
	if a.selCard < 0 || a.selCard >= len(cards) {
		return board.Card{}, false
	}
	return cards[a.selCard], true
}

func (a *App) clampSelection() {
	n := len(a.board.Columns)
	if n == 0 {
		a.selCol, a.selCard = 0, 0
		return
	}
	a.selCol = max(0, min(a.selCol, n-1))
	cards := len(a.board.Columns[a.selCol].Cards)
	a.selCard = max(0, min(a.selCard, cards-1))
}

// staffOptions is Unassigned followed by the roster, plus current when it
// is a name outside the roster.
func (a *App) staffOptions(current string) []string {
	opts := append([]string{coreroom.DefaultStaff}, a.roster...)
	for _, o := range opts {
		if o == current {
			return opts
		}
	}
	if current != "" {
		opts = append(opts, current)
	}
	return opts
}

func cycle(opts []string, current string, step int) string {
	if len(opts) == 0 {
		return current
	}
	for i, o := range opts {
		if o == current {
			return opts[(i+step+len(opts))%len(opts)]
		}
	}
	return opts[0]
}

func cycleStatus(current string, step int) string {
	st, ok := coreroom.ParseStatus(current)
	if !ok {
		return string(coreroom.InitialStatus())
	}
	if step < 0 {
		return string(st.Prev())
	}
	return string(st.Next())
}

// View renders the current screen.
func (a *App) View() string {
	var body string
	switch a.screen {
	case screenEdit:
		body = a.place(a.editView())
	case screenAdd:
		body = a.place(a.addView())
	case screenConfirm:
		body = a.place(modalStyle.Render(a.confirmMsg + "\n\n" + helpStyle.Render("y: yes · n: no")))
	default:
		body = cliadapter.BoardView(a.board, a.selCol, a.selCard)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🏨 Housekeeping Board"))
	b.WriteString("\n")
	b.WriteString(cliadapter.Summary(a.board))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if a.statusMsg != "" {
		b.WriteString(statusStyle.Render(a.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(a.help()))
	return b.String()
}

func (a *App) place(box string) string {
	if a.width == 0 || a.height == 0 {
		return box
	}
	return lipgloss.Place(a.width, max(lipgloss.Height(box), a.height-6), lipgloss.Center, lipgloss.Center, box)
}

func (a *App) editView() string {
	focused := editFields[a.editFocus]
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Room %s", a.modal.Number)),
		"",
		row("Status", "◀ "+a.modal.Status+" ▶", focused == fieldStatus),
		row("Staff", "◀ "+a.modal.Staff+" ▶", focused == fieldStaff),
		row("Notes", a.notesInput.View(), focused == fieldNotes),
		row("Priority", checkbox(a.modal.Priority), focused == fieldPriority),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) addView() string {
	focused := addFields[a.addFocus]
	lines := []string{
		titleStyle.Render("Add Room"),
		"",
		row("Number", a.numberInput.View(), focused == fieldNumber),
		row("Staff", "◀ "+a.addStaff+" ▶", focused == fieldStaff),
		row("Notes", a.addNotes.View(), focused == fieldNotes),
		row("Priority", checkbox(a.addPriority), focused == fieldPriority),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func row(label, value string, focused bool) string {
	l := labelStyle.Render(label)
	if focused {
		l = focusStyle.Render("› ") + labelStyle.Render(label)
	} else {
		l = "  " + l
	}
	return l + value
}

func checkbox(on bool) string {
	if on {
		return "[x] " + board.PriorityMarker
	}
	return "[ ]"
}

func (a *App) help() string {
	switch a.screen {
	case screenEdit:
		return "tab: next field · ←/→: change · space: priority · enter/u: update · d: delete · esc: close"
	case screenAdd:
		return "tab: next field · ←/→: staff · space: priority · enter: add · esc: cancel"
	case screenConfirm:
		return ""
	default:
		return "←/→/↑/↓: move · enter: open · a: add · C: clear all · r: refresh · q: quit"
	}
}
