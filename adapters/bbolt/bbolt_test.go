package bbolt

import (
	"path/filepath"
	"testing"
)

func TestStoreOpenShouldRejectEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestStoreGetShouldReportAbsentKeys(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("absent key should report ok=false")
	}
}

func TestStoreSetGetShouldRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("tasks", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != `[{"id":"1"}]` {
		t.Errorf("Get = (%q, %v), want the stored value", value, ok)
	}
}

func TestStoreSetShouldReplacePreviousValue(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	store.Set("tasks", "old")
	store.Set("tasks", "new")

	value, _, err := store.Get("tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "new" {
		t.Errorf("value = %q, want new", value)
	}
}

func TestStoreShouldPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set("tasks", "durable"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "durable" {
		t.Errorf("Get after reopen = (%q, %v), want durable", value, ok)
	}
}
