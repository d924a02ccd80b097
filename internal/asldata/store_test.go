package asldata

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "asldata-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	s, err := New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	tables := []string{"words", "instances"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist after migrations: %v", table, err)
		}
	}
}

func TestWordRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Words()

	created, err := repo.Create("BOOK")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created word has empty ID")
	}

	got, err := repo.GetByName("BOOK")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.ID != created.ID || got.Name != "BOOK" {
		t.Errorf("GetByName() = %+v, want %+v", got, created)
	}
}

func TestWordRepository_GetByName_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Words().GetByName("MISSING")
	if err != ErrNotFound {
		t.Errorf("GetByName() error = %v, want ErrNotFound", err)
	}
}

func TestWordRepository_Instances_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	repo := s.Words()

	w, err := repo.Create("BOOK")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	instances := [][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	}
	if err := repo.AddInstances(w.ID, instances); err != nil {
		t.Fatalf("AddInstances() error = %v", err)
	}

	got, err := repo.InstancesByWordID(w.ID)
	if err != nil {
		t.Fatalf("InstancesByWordID() error = %v", err)
	}
	if !reflect.DeepEqual(got, instances) {
		t.Errorf("round trip mismatch: got %v, want %v", got, instances)
	}
}

func TestStore_DatasetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	d := NewDataset()
	d.AddWord("BOOK", [][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	})
	d.AddWord("CHOCOLATE", [][][]float64{
		{{7, 8}, {9, 10}},
	})

	if err := s.SaveDataset(d); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}

	loaded, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Words(), d.Words()) {
		t.Errorf("vocabulary mismatch: got %v, want %v", loaded.Words(), d.Words())
	}
	if !reflect.DeepEqual(loaded.Sequences, d.Sequences) {
		t.Errorf("sequences mismatch after round trip")
	}
	if !reflect.DeepEqual(loaded.XLengths["BOOK"].Lengths, []int{2, 1}) {
		t.Errorf("BOOK lengths = %v, want [2 1]", loaded.XLengths["BOOK"].Lengths)
	}
}
