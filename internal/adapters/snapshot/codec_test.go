package snapshot

import (
	"strings"
	"testing"

	"github.com/example/housekeeping/internal/ports/secondary"
)

func TestEncode_FieldNames(t *testing.T) {
	data, err := Encode([]*secondary.RoomRecord{
		{ID: 1, Number: "101", Status: "Dirty", Staff: "Maria", Notes: "n", Priority: true},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `[{"id":1,"number":"101","status":"Dirty","staff":"Maria","notes":"n","priority":true}]`
	if string(data) != want {
		t.Errorf("Encode = %s, want %s", data, want)
	}
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %s, want []", data)
	}
}

func TestDecode_SkipsNulls(t *testing.T) {
	rooms, err := Decode([]byte(`[null,{"id":2,"number":"102","status":"Ready","staff":"John","notes":"","priority":false}]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Number != "102" {
		t.Errorf("unexpected rooms %+v", rooms)
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for garbage payload")
	}
	if !strings.Contains(err.Error(), "failed to decode snapshot") {
		t.Errorf("unexpected error %v", err)
	}
}
