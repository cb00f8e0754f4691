// Package interaction holds the board's user-facing state machine: which
// room (if any) is open for editing, and what happens when the user adds,
// updates, deletes or clears rooms. Confirmation and notification are
// injected so the same controller drives both the TUI and the one-shot
// CLI commands.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/housekeeping/internal/core/board"
	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/ports/primary"
)

// Notices shown to the user.
const (
	NoticeUpdated     = "Room updated successfully!"
	NoticeDeleted     = "Room deleted successfully!"
	NoticeCleared     = "All data cleared!"
	NoticeNeedNumber  = "Please enter a room number"
	NoticeDuplicate   = "Room already exists!"
	NoticeBadStatus   = "Please choose a valid status"
	ConfirmDeleteRoom = "Are you sure you want to delete this room?"
	ConfirmClearAll   = "This will delete ALL rooms. Are you sure?"
)

// NoticeAdded is the notice shown after a room is added.
func NoticeAdded(number string) string {
	return fmt.Sprintf("Room %s added successfully!", number)
}

// IsSuccess reports whether msg is one of the success notices.
func IsSuccess(msg string) bool {
	switch msg {
	case NoticeUpdated, NoticeDeleted, NoticeCleared:
		return true
	}
	return strings.HasPrefix(msg, "Room ") && strings.HasSuffix(msg, " added successfully!")
}

// State is the controller's modal state.
type State int

const (
	StateIdle State = iota
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Prompter asks the user yes/no questions and shows transient notices.
type Prompter interface {
	Confirm(msg string) bool
	Notify(msg string)
}

// Renderer draws the board.
type Renderer interface {
	Render(b board.Board)
}

// ModalFields are the editable fields of an open room.
type ModalFields struct {
	Number   string // read-only, shown in the modal title
	Status   string
	Staff    string
	Notes    string
	Priority bool
}

// FormFields are the inputs of the add-room form.
type FormFields struct {
	Number   string
	Staff    string
	Notes    string
	Priority bool
}

// Controller coordinates the repository, the renderer and the prompter.
// It is not safe for concurrent use.
type Controller struct {
	rooms    primary.RoomService
	prompter Prompter
	renderer Renderer
	logger   *zap.Logger

	state         State
	currentRoomID *int
}

// NewController creates a Controller in the Idle state.
func NewController(rooms primary.RoomService, prompter Prompter, renderer Renderer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		rooms:    rooms,
		prompter: prompter,
		renderer: renderer,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the current modal state.
func (c *Controller) State() State {
	return c.state
}

// CurrentRoomID returns the room open for editing.
func (c *Controller) CurrentRoomID() (int, bool) {
	if c.currentRoomID == nil {
		return 0, false
	}
	return *c.currentRoomID, true
}

// Refresh lists the rooms, projects them and hands the board to the renderer.
func (c *Controller) Refresh(ctx context.Context) board.Board {
	b := ProjectBoard(c.rooms.ListRooms(ctx))
	if c.renderer != nil {
		c.renderer.Render(b)
	}
	return b
}

// OpenRoom opens the edit modal for roomID. An unknown id leaves the
// controller idle.
func (c *Controller) OpenRoom(ctx context.Context, roomID int) (ModalFields, bool) {
	r, err := c.rooms.GetRoom(ctx, roomID)
	if err != nil {
		c.logger.Debug("open room ignored", zap.Int("id", roomID), zap.Error(err))
		c.toIdle()
		return ModalFields{}, false
	}

	id := r.ID
	c.currentRoomID = &id
	c.state = StateEditing

	return ModalFields{
		Number:   r.Number,
		Status:   r.Status,
		Staff:    r.Staff,
		Notes:    r.Notes,
		Priority: r.Priority,
	}, true
}

// Close dismisses the edit modal.
func (c *Controller) Close() {
	c.toIdle()
}

// ClickBackground dismisses the edit modal, as a click outside it does.
func (c *Controller) ClickBackground() {
	c.toIdle()
}

// SubmitUpdate saves the modal fields to the open room.
// A room that vanished in the meantime closes the modal without a notice.
// Any other failure is shown and the modal stays open.
func (c *Controller) SubmitUpdate(ctx context.Context, f ModalFields) error {
	id, ok := c.CurrentRoomID()
	if !ok {
		return nil
	}

	_, err := c.rooms.UpdateRoom(ctx, primary.UpdateRoomRequest{
		RoomID:   id,
		Status:   f.Status,
		Staff:    f.Staff,
		Notes:    f.Notes,
		Priority: f.Priority,
	})
	if errors.Is(err, coreroom.ErrNotFound) {
		c.toIdle()
		return nil
	}
	if err != nil {
		c.notify(noticeFor(err))
		return err
	}

	c.Refresh(ctx)
	c.notify(NoticeUpdated)
	c.toIdle()
	return nil
}

// Delete removes the open room after confirmation. Declining keeps the
// modal open.
func (c *Controller) Delete(ctx context.Context) error {
	id, ok := c.CurrentRoomID()
	if !ok {
		return nil
	}
	if !c.confirm(ConfirmDeleteRoom) {
		return nil
	}

	err := c.rooms.RemoveRoom(ctx, id)
	if errors.Is(err, coreroom.ErrNotFound) {
		c.toIdle()
		return nil
	}
	if err != nil {
		c.notify(noticeFor(err))
		return err
	}

	c.Refresh(ctx)
	c.notify(NoticeDeleted)
	c.toIdle()
	return nil
}

// SubmitAdd adds a room from the form. On success the returned form is
// cleared; on failure it is returned untouched along with the error.
func (c *Controller) SubmitAdd(ctx context.Context, f FormFields) (FormFields, error) {
	r, err := c.rooms.AddRoom(ctx, primary.AddRoomRequest{
		Number:   f.Number,
		Staff:    f.Staff,
		Notes:    f.Notes,
		Priority: f.Priority,
	})
	if err != nil {
		c.notify(noticeFor(err))
		return f, err
	}

	c.Refresh(ctx)
	c.notify(NoticeAdded(r.Number))
	return FormFields{}, nil
}

// ClearAll removes every room after confirmation.
func (c *Controller) ClearAll(ctx context.Context) error {
	if !c.confirm(ConfirmClearAll) {
		return nil
	}

	if err := c.rooms.ClearRooms(ctx); err != nil {
		c.notify(noticeFor(err))
		return err
	}

	c.toIdle()
	c.Refresh(ctx)
	c.notify(NoticeCleared)
	return nil
}

// ProjectBoard maps rooms onto board cards and builds the board.
func ProjectBoard(rooms []*primary.Room) board.Board {
	cards := make([]board.Card, 0, len(rooms))
	for _, r := range rooms {
		cards = append(cards, board.Card{
			ID:       r.ID,
			Number:   r.Number,
			Status:   r.Status,
			Staff:    r.Staff,
			Notes:    r.Notes,
			Priority: r.Priority,
		})
	}
	return board.Build(cards)
}

func (c *Controller) toIdle() {
	c.state = StateIdle
	c.currentRoomID = nil
}

func (c *Controller) confirm(msg string) bool {
	if c.prompter == nil {
		return false
	}
	return c.prompter.Confirm(msg)
}

func (c *Controller) notify(msg string) {
	if c.prompter != nil {
		c.prompter.Notify(msg)
	}
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, coreroom.ErrEmptyInput):
		return NoticeNeedNumber
	case errors.Is(err, coreroom.ErrDuplicateNumber):
		return NoticeDuplicate
	case errors.Is(err, coreroom.ErrInvalidStatus):
		return NoticeBadStatus
	default:
		return fmt.Sprintf("Could not save changes: %v", err)
	}
}
