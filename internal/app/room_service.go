package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/ports/primary"
	"github.com/example/housekeeping/internal/ports/secondary"
)

// RoomServiceImpl implements the RoomService interface.
// It is the single owner of the room list for the process.
type RoomServiceImpl struct {
	store  secondary.SnapshotStore
	logger *zap.Logger

	// insertion order; ListRooms sorts a copy
	rooms []*secondary.RoomRecord
}

// NewRoomService creates a new RoomService with injected dependencies.
func NewRoomService(store secondary.SnapshotStore, logger *zap.Logger) *RoomServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomServiceImpl{
		store:  store,
		logger: logger,
		rooms:  []*secondary.RoomRecord{},
	}
}

// Open rehydrates the room list from the store.
func (s *RoomServiceImpl) Open(ctx context.Context, seed bool) error {
	records, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	rooms := make([]*secondary.RoomRecord, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		number := strings.TrimSpace(r.Number)
		if number == "" || seen[number] {
			s.logger.Warn("skipping stored room", zap.Int("id", r.ID), zap.String("number", r.Number))
			continue
		}
		seen[number] = true
		rooms = append(rooms, r)
	}
	s.rooms = rooms

	if len(s.rooms) == 0 && seed {
		if err := s.commit(ctx, SampleRooms()); err != nil {
			return fmt.Errorf("failed to seed sample rooms: %w", err)
		}
		s.logger.Info("seeded sample rooms", zap.Int("count", len(s.rooms)))
		return nil
	}

	s.logger.Debug("rooms loaded", zap.Int("count", len(s.rooms)))
	return nil
}

// AddRoom creates a new room in the initial status.
func (s *RoomServiceImpl) AddRoom(ctx context.Context, req primary.AddRoomRequest) (*primary.Room, error) {
	number := strings.TrimSpace(req.Number)

	guard := coreroom.CanAddRoom(coreroom.AddRoomContext{
		Number:       number,
		NumberExists: s.indexOfNumber(number) >= 0,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	record := &secondary.RoomRecord{
		ID:       coreroom.NextID(s.ids()),
		Number:   number,
		Status:   string(coreroom.InitialStatus()),
		Staff:    coreroom.NormalizeStaff(req.Staff),
		Notes:    strings.TrimSpace(req.Notes),
		Priority: req.Priority,
	}

	next := append(s.snapshot(), record)
	if err := s.commit(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to add room %s: %w", number, err)
	}

	s.logger.Debug("room added", zap.Int("id", record.ID), zap.String("number", record.Number))
	return s.recordToRoom(record), nil
}

// GetRoom retrieves a room by ID.
func (s *RoomServiceImpl) GetRoom(ctx context.Context, roomID int) (*primary.Room, error) {
	idx := s.indexOfID(roomID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: room id %d", coreroom.ErrNotFound, roomID)
	}
	return s.recordToRoom(s.rooms[idx]), nil
}

// UpdateRoom replaces status, staff, notes and priority of a room.
func (s *RoomServiceImpl) UpdateRoom(ctx context.Context, req primary.UpdateRoomRequest) (*primary.Room, error) {
	idx := s.indexOfID(req.RoomID)

	guard := coreroom.CanUpdateRoom(coreroom.UpdateRoomContext{
		RoomID:     req.RoomID,
		RoomExists: idx >= 0,
		Status:     req.Status,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	status, _ := coreroom.ParseStatus(req.Status)
	updated := *s.rooms[idx]
	updated.Status = string(status)
	updated.Staff = coreroom.NormalizeStaff(req.Staff)
	updated.Notes = req.Notes
	updated.Priority = req.Priority

	next := s.snapshot()
	next[idx] = &updated
	if err := s.commit(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to update room %s: %w", updated.Number, err)
	}

	s.logger.Debug("room updated",
		zap.Int("id", updated.ID),
		zap.String("status", updated.Status),
		zap.String("staff", updated.Staff),
		zap.Bool("priority", updated.Priority),
	)
	return s.recordToRoom(&updated), nil
}

// RemoveRoom deletes a room.
func (s *RoomServiceImpl) RemoveRoom(ctx context.Context, roomID int) error {
	idx := s.indexOfID(roomID)

	guard := coreroom.CanRemoveRoom(coreroom.RemoveRoomContext{
		RoomID:     roomID,
		RoomExists: idx >= 0,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	removed := s.rooms[idx]
	next := make([]*secondary.RoomRecord, 0, len(s.rooms)-1)
	next = append(next, s.rooms[:idx]...)
	next = append(next, s.rooms[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("failed to remove room %s: %w", removed.Number, err)
	}

	s.logger.Debug("room removed", zap.Int("id", removed.ID), zap.String("number", removed.Number))
	return nil
}

// ClearRooms deletes every room.
func (s *RoomServiceImpl) ClearRooms(ctx context.Context) error {
	count := len(s.rooms)
	if err := s.commit(ctx, []*secondary.RoomRecord{}); err != nil {
		return fmt.Errorf("failed to clear rooms: %w", err)
	}

	s.logger.Info("rooms cleared", zap.Int("count", count))
	return nil
}

// ListRooms returns all rooms ordered by the numeric value of their number.
// Rooms that compare equal keep insertion order.
func (s *RoomServiceImpl) ListRooms(ctx context.Context) []*primary.Room {
	rooms := make([]*primary.Room, len(s.rooms))
	for i, r := range s.rooms {
		rooms[i] = s.recordToRoom(r)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return coreroom.CompareNumbers(rooms[i].Number, rooms[j].Number) < 0
	})
	return rooms
}

// Helper methods

// commit writes next to the store and only then makes it current.
func (s *RoomServiceImpl) commit(ctx context.Context, next []*secondary.RoomRecord) error {
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error("snapshot write failed", zap.Error(err))
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	s.rooms = next
	return nil
}

func (s *RoomServiceImpl) snapshot() []*secondary.RoomRecord {
	out := make([]*secondary.RoomRecord, len(s.rooms), len(s.rooms)+1)
	copy(out, s.rooms)
	return out
}

func (s *RoomServiceImpl) ids() []int {
	ids := make([]int, len(s.rooms))
	for i, r := range s.rooms {
		ids[i] = r.ID
	}
	return ids
}

func (s *RoomServiceImpl) indexOfID(id int) int {
	for i, r := range s.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *RoomServiceImpl) indexOfNumber(number string) int {
	for i, r := range s.rooms {
		if r.Number == number {
			return i
		}
	}
	return -1
}

func (s *RoomServiceImpl) recordToRoom(r *secondary.RoomRecord) *primary.Room {
	return &primary.Room{
		ID:       r.ID,
		Number:   r.Number,
		Status:   r.Status,
		Staff:    r.Staff,
		Notes:    r.Notes,
		Priority: r.Priority,
	}
}

// Ensure RoomServiceImpl implements the interface.
var _ primary.RoomService = (*RoomServiceImpl)(nil)
