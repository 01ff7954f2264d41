package ports

import "filesense/internal/domain"

// FolderScanner analyzes a single folder, non-recursively.
type FolderScanner interface {
	Analyze(folderPath string) (*domain.FolderAnalysis, error)
}

// Organizer executes and reverses bulk file relocations.
//
// Organize always returns the move records for every rename that
// succeeded, even when the returned error is non-nil, so a partially
// completed run can still be undone.
type Organizer interface {
	Organize(plan *domain.OrganizationPlan) ([]domain.MoveRecord, error)
	Undo(log []domain.MoveRecord) (int, error)
}

// MoveJournal retains move logs between an organize call and a later
// undo. The core itself holds no state between calls; the journal is
// the caller-side retention of the log.
type MoveJournal interface {
	SaveBatch(targetRoot string, moves []domain.MoveRecord) (int64, error)
	LatestBatch() (*domain.MoveBatch, []domain.MoveRecord, error)
	Batch(id int64) (*domain.MoveBatch, []domain.MoveRecord, error)
	ListBatches(limit int) ([]domain.MoveBatch, error)
	DeleteBatch(id int64) error
	Close() error
}
