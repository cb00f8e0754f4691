// Package snapshot holds the wire format shared by the snapshot stores.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/example/housekeeping/internal/ports/secondary"
)

// DefaultKey is the key the room list is stored under.
const DefaultKey = "rooms"

// Encode serializes rooms as a JSON array. A nil slice encodes as [].
func Encode(rooms []*secondary.RoomRecord) ([]byte, error) {
	if rooms == nil {
		rooms = []*secondary.RoomRecord{}
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot. Null entries are skipped.
func Decode(data []byte) ([]*secondary.RoomRecord, error) {
	var raw []*secondary.RoomRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	rooms := make([]*secondary.RoomRecord, 0, len(raw))
	for _, r := range raw {
		if r != nil {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}
