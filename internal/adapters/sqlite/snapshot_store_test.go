package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/housekeeping/internal/adapters/sqlite"
	"github.com/example/housekeeping/internal/db"
	"github.com/example/housekeeping/internal/ports/secondary"
)

func setupSnapshotTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func sampleRecords() []*secondary.RoomRecord {
	return []*secondary.RoomRecord{
		{ID: 1, Number: "101", Status: "Dirty", Staff: "Maria", Notes: "Guest checkout morning"},
		{ID: 2, Number: "102", Status: "Cleaning", Staff: "John"},
		{ID: 6, Number: "201", Status: "Dirty", Staff: "Rosa", Notes: "VIP guest - messy room", Priority: true},
	}
}

func TestSnapshotStore_LoadEmpty(t *testing.T) {
	store := sqlite.NewSnapshotStore(setupSnapshotTestDB(t), "", nil)

	rooms, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rooms == nil || len(rooms) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", rooms)
	}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := sqlite.NewSnapshotStore(setupSnapshotTestDB(t), "rooms", nil)
	ctx := context.Background()
	want := sampleRecords()

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(got))
	}
	for i := range want {
		if *got[i] != *want[i] {
			t.Errorf("room %d = %+v, want %+v", i, *got[i], *want[i])
		}
	}
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	testDB := setupSnapshotTestDB(t)
	store := sqlite.NewSnapshotStore(testDB, "rooms", nil)
	ctx := context.Background()

	if err := store.Save(ctx, sampleRecords()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	var rows int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM kv").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected a single kv row, got %d", rows)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot after overwrite, got %d rooms", len(got))
	}
}

func TestSnapshotStore_KeysAreIndependent(t *testing.T) {
	testDB := setupSnapshotTestDB(t)
	ctx := context.Background()
	a := sqlite.NewSnapshotStore(testDB, "east-wing", nil)
	b := sqlite.NewSnapshotStore(testDB, "west-wing", nil)

	if err := a.Save(ctx, sampleRecords()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected other key to be empty, got %d rooms", len(got))
	}
}

func TestSnapshotStore_UnparseableIsEmpty(t *testing.T) {
	testDB := setupSnapshotTestDB(t)
	if _, err := testDB.Exec("INSERT INTO kv (key, value) VALUES ('rooms', 'not json')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	store := sqlite.NewSnapshotStore(testDB, "rooms", nil)

	rooms, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error for garbled snapshot, got %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("expected empty list, got %d rooms", len(rooms))
	}
}

func TestSnapshotStore_LoadQueryError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs("rooms").
		WillReturnError(errors.New("database is locked"))

	store := sqlite.NewSnapshotStore(mockDB, "rooms", nil)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected backend error to surface")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSnapshotStore_SaveExecError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs("rooms", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	store := sqlite.NewSnapshotStore(mockDB, "rooms", nil)
	if err := store.Save(context.Background(), sampleRecords()); err == nil {
		t.Fatal("expected write error to surface")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
