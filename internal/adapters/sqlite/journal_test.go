package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"filesense/internal/application"
	"filesense/internal/domain"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	t.Cleanup(func() { journal.Close() })
	return journal
}

func TestSaveAndLoadBatch(t *testing.T) {
	journal := openTestJournal(t)

	moves := []domain.MoveRecord{
		{From: "/src/a.txt", To: "/dst/Documents/a.txt"},
		{From: "/src/b.mp3", To: "/dst/Audio/b.mp3"},
	}
	id, err := journal.SaveBatch("/dst", moves)
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	batch, loaded, err := journal.LatestBatch()
	if err != nil {
		t.Fatalf("LatestBatch failed: %v", err)
	}
	if batch.ID != id {
		t.Errorf("expected batch %d, got %d", id, batch.ID)
	}
	if batch.TargetRoot != "/dst" {
		t.Errorf("unexpected target root: %s", batch.TargetRoot)
	}
	if batch.MoveCount != 2 {
		t.Errorf("expected 2 moves, got %d", batch.MoveCount)
	}
	if len(loaded) != 2 || loaded[0] != moves[0] || loaded[1] != moves[1] {
		t.Errorf("move log not preserved in order: %v", loaded)
	}
}

func TestLatestBatchPicksNewest(t *testing.T) {
	journal := openTestJournal(t)

	if _, err := journal.SaveBatch("/first", []domain.MoveRecord{{From: "/a", To: "/b"}}); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	second, err := journal.SaveBatch("/second", []domain.MoveRecord{{From: "/c", To: "/d"}})
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	batch, _, err := journal.LatestBatch()
	if err != nil {
		t.Fatalf("LatestBatch failed: %v", err)
	}
	if batch.ID != second {
		t.Errorf("expected newest batch %d, got %d", second, batch.ID)
	}

	batches, err := journal.ListBatches(10)
	if err != nil {
		t.Fatalf("ListBatches failed: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if batches[0].ID != second {
		t.Errorf("batches not newest-first: %v", batches)
	}
}

func TestDeleteBatch(t *testing.T) {
	journal := openTestJournal(t)

	id, err := journal.SaveBatch("/dst", []domain.MoveRecord{{From: "/a", To: "/b"}})
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	if err := journal.DeleteBatch(id); err != nil {
		t.Fatalf("DeleteBatch failed: %v", err)
	}

	if _, _, err := journal.LatestBatch(); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if _, _, err := journal.Batch(id); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound for deleted batch, got %v", err)
	}
}

func TestEmptyJournal(t *testing.T) {
	journal := openTestJournal(t)

	if _, _, err := journal.LatestBatch(); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty journal, got %v", err)
	}
	batches, err := journal.ListBatches(5)
	if err != nil {
		t.Fatalf("ListBatches failed: %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("expected no batches, got %d", len(batches))
	}
}
