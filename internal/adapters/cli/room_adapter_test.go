package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/ports/primary"
)

// mockRoomService implements primary.RoomService for testing
type mockRoomService struct {
	rooms     []*primary.Room
	getRoomFn func(ctx context.Context, roomID int) (*primary.Room, error)
}

func (m *mockRoomService) Open(ctx context.Context, seed bool) error {
	return nil
}

func (m *mockRoomService) AddRoom(ctx context.Context, req primary.AddRoomRequest) (*primary.Room, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockRoomService) GetRoom(ctx context.Context, roomID int) (*primary.Room, error) {
	if m.getRoomFn != nil {
		return m.getRoomFn(ctx, roomID)
	}
	for _, r := range m.rooms {
		if r.ID == roomID {
			return r, nil
		}
	}
	return nil, coreroom.ErrNotFound
}

func (m *mockRoomService) UpdateRoom(ctx context.Context, req primary.UpdateRoomRequest) (*primary.Room, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockRoomService) RemoveRoom(ctx context.Context, roomID int) error {
	return errors.New("not implemented in adapter")
}

func (m *mockRoomService) ClearRooms(ctx context.Context) error {
	return errors.New("not implemented in adapter")
}

func (m *mockRoomService) ListRooms(ctx context.Context) []*primary.Room {
	return m.rooms
}

func sampleRooms() []*primary.Room {
	return []*primary.Room{
		{ID: 1, Number: "101", Status: "Dirty", Staff: "Maria", Notes: "Guest checkout morning"},
		{ID: 4, Number: "104", Status: "Ready", Staff: "Maria"},
		{ID: 6, Number: "201", Status: "Dirty", Staff: "Rosa", Notes: "VIP guest - messy room", Priority: true},
	}
}

// ============================================================================
// List Tests
// ============================================================================

func TestRoomAdapter_List(t *testing.T) {
	service := &mockRoomService{rooms: sampleRooms()}
	var buf bytes.Buffer
	adapter := NewRoomAdapter(service, &buf)

	rooms, err := adapter.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 3 {
		t.Errorf("expected 3 rooms, got %d", len(rooms))
	}

	output := buf.String()
	for _, want := range []string{"ROOM", "101", "104", "201 ⭐ VIP", "Guest checkout morning"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRoomAdapter_List_StatusFilter(t *testing.T) {
	service := &mockRoomService{rooms: sampleRooms()}
	var buf bytes.Buffer
	adapter := NewRoomAdapter(service, &buf)

	rooms, err := adapter.List(context.Background(), "dirty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 dirty rooms, got %d", len(rooms))
	}
	if strings.Contains(buf.String(), "104") {
		t.Error("ready room should be filtered out")
	}
}

func TestRoomAdapter_List_InvalidStatus(t *testing.T) {
	adapter := NewRoomAdapter(&mockRoomService{rooms: sampleRooms()}, &bytes.Buffer{})

	_, err := adapter.List(context.Background(), "Sparkling")
	if !errors.Is(err, coreroom.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRoomAdapter_List_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewRoomAdapter(&mockRoomService{}, &buf)

	if _, err := adapter.List(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No rooms found.") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

// ============================================================================
// Show Tests
// ============================================================================

func TestRoomAdapter_Show(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewRoomAdapter(&mockRoomService{rooms: sampleRooms()}, &buf)

	r, err := adapter.Show(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Number != "201" {
		t.Errorf("expected room 201, got %s", r.Number)
	}

	output := buf.String()
	for _, want := range []string{"Room 201 (id 6)", "Rosa", "⭐ VIP", "VIP guest - messy room"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRoomAdapter_Show_NotFound(t *testing.T) {
	adapter := NewRoomAdapter(&mockRoomService{}, &bytes.Buffer{})

	_, err := adapter.Show(context.Background(), 42)
	if !errors.Is(err, coreroom.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
