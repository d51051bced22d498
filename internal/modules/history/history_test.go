package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wayfind/internal/modules/location"
)

func charminar() location.Location {
	return location.Location{
		ID:        "1",
		Name:      "Charminar",
		Address:   "Charminar Road, Hyderabad",
		Latitude:  17.3616,
		Longitude: 78.4747,
		Area:      "Old City",
		Pincode:   "500002",
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	e := NewEntry(charminar(), now)

	if e.ID == "" {
		t.Error("expected a generated id")
	}
	if e.LocationID != "1" || e.LocationName != "Charminar" {
		t.Errorf("location fields not carried over: %+v", e)
	}
	if e.SearchDate != "8/31/2026, 3:04:05 PM" {
		t.Errorf("SearchDate = %q", e.SearchDate)
	}
	if !e.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v", e.Timestamp)
	}
	if e.LatitudeRange == nil || e.LongitudeRange == nil {
		t.Fatal("expected ranges back-filled")
	}
	if !e.LatitudeRange.Contains(e.Latitude) {
		t.Errorf("latitude %v outside its range %+v", e.Latitude, e.LatitudeRange)
	}
}

func TestMemoryStore_NewestFirstAndTrim(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)

	for i := 0; i < 5; i++ {
		e := NewEntry(charminar(), time.Now())
		e.LocationName = fmt.Sprintf("entry-%d", i)
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected trim to 3, got %d", len(entries))
	}
	if entries[0].LocationName != "entry-4" || entries[2].LocationName != "entry-2" {
		t.Errorf("unexpected order: %s .. %s", entries[0].LocationName, entries[2].LocationName)
	}
}

func TestMemoryStore_GetAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0) // default limit

	e := NewEntry(charminar(), time.Now())
	if err := store.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.LocationName != "Charminar" {
		t.Errorf("got %+v", got)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, _ := store.List(ctx)
	if len(entries) != 0 {
		t.Errorf("expected empty list after clear, got %d", len(entries))
	}
}

func TestService_RecordFillsFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(0))
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC) }

	e, err := svc.Record(ctx, charminar())
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.SearchDate != "1/2/2026, 9:30:00 AM" {
		t.Errorf("SearchDate = %q", e.SearchDate)
	}

	// Caller-built entry with gaps gets them filled.
	partial := Entry{LocationID: "1", LocationName: "Charminar", Latitude: 17.3616, Longitude: 78.4747}
	saved, err := svc.RecordEntry(ctx, partial)
	if err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}
	if saved.ID == "" || saved.Timestamp.IsZero() || saved.SearchDate == "" {
		t.Errorf("expected filled fields, got %+v", saved)
	}
	if saved.LatitudeRange == nil || saved.LongitudeRange == nil {
		t.Fatal("expected coordinate ranges back-filled")
	}
	if !saved.LatitudeRange.Contains(saved.Latitude) || !saved.LongitudeRange.Contains(saved.Longitude) {
		t.Errorf("point outside back-filled ranges: %+v", saved)
	}

	entries, _ := svc.List(ctx)
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("WAYFIND_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFIND_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	store := NewPostgresStore(pool)
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	e := NewEntry(charminar(), time.Now().UTC().Truncate(time.Microsecond))
	if err := store.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.LocationName != e.LocationName || got.Pincode != e.Pincode {
		t.Errorf("round trip mismatch: %+v vs %+v", got, e)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}

	if _, err := store.Get(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresStore_SameTimestampListsNewestInsertFirst(t *testing.T) {
	dsn := os.Getenv("WAYFIND_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFIND_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	store := NewPostgresStore(pool)
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Microsecond)
	first := NewEntry(charminar(), at)
	first.LocationName = "first"
	second := NewEntry(charminar(), at)
	second.LocationName = "second"

	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("Append second: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].LocationName != "second" || entries[1].LocationName != "first" {
		t.Errorf("same-timestamp order not deterministic: %s, %s",
			entries[0].LocationName, entries[1].LocationName)
	}
}
