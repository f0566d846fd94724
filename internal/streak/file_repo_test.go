package streak

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestFileRepo_SeedsDefaultsOnFreshDir(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir(), quietLogger())
	if err != nil {
		t.Fatalf("NewFileRepo: %v", err)
	}

	recs := repo.List()
	if len(recs) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.CurrentStreak != 0 || rec.LastCompletedDate != nil {
			t.Fatalf("seeded record should be zeroed: %+v", rec)
		}
		if rec.History == nil {
			t.Fatalf("seeded history should be non-nil")
		}
	}
}

func TestFileRepo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir, quietLogger())
	if err != nil {
		t.Fatalf("NewFileRepo: %v", err)
	}

	recs := repo.List()
	recs[0], _ = Complete(recs[0], "2024-01-10")
	if err := repo.SaveAll(recs); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	reopened, err := NewFileRepo(dir, quietLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(recs[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentStreak != 1 || got.LastCompletedDate == nil || *got.LastCompletedDate != "2024-01-10" {
		t.Fatalf("persisted record mismatch: %+v", got)
	}
}

func TestFileRepo_CorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ledgerFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	repo, err := NewFileRepo(dir, quietLogger())
	if err != nil {
		t.Fatalf("NewFileRepo should tolerate corrupt content: %v", err)
	}
	if len(repo.List()) != 4 {
		t.Fatalf("expected default ledger after corrupt load")
	}
}

func TestFileRepo_GetUnknownID(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir(), quietLogger())
	if err != nil {
		t.Fatalf("NewFileRepo: %v", err)
	}
	if _, err := repo.Get("sleep"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
