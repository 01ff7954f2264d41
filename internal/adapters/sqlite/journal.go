package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"filesense/internal/application"
	"filesense/internal/domain"
	"filesense/internal/ports"

	_ "modernc.org/sqlite"
)

// Journal implements ports.MoveJournal using SQLite. It retains the
// move log of each organize run so a later process can undo it.
type Journal struct {
	db   *sql.DB
	path string
}

// Ensure Journal implements MoveJournal
var _ ports.MoveJournal = (*Journal)(nil)

// Open initializes the journal at the given path, creating the parent
// directory and schema as needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			target_root TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS moves (
			batch_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			src TEXT NOT NULL,
			dst TEXT NOT NULL,
			PRIMARY KEY (batch_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_moves_batch ON moves(batch_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup journal: %w", err)
	}

	return &Journal{db: db, path: path}, nil
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}

// SaveBatch stores one organize run's move log and returns the batch ID.
// Move order is preserved; undo replays it as recorded.
func (j *Journal) SaveBatch(targetRoot string, moves []domain.MoveRecord) (int64, error) {
	tx, err := j.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO batches (target_root, created_at) VALUES (?, ?)`,
		targetRoot, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	batchID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for seq, rec := range moves {
		_, err := tx.Exec(`INSERT INTO moves (batch_id, seq, src, dst) VALUES (?, ?, ?, ?)`,
			batchID, seq, rec.From, rec.To)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return batchID, nil
}

// LatestBatch returns the most recently saved batch and its move log
func (j *Journal) LatestBatch() (*domain.MoveBatch, []domain.MoveRecord, error) {
	var id int64
	err := j.db.QueryRow(`SELECT id FROM batches ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("move log %w: journal is empty", application.ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	return j.Batch(id)
}

// Batch returns one batch and its move log by ID
func (j *Journal) Batch(id int64) (*domain.MoveBatch, []domain.MoveRecord, error) {
	batch := &domain.MoveBatch{ID: id}
	var createdAt int64
	err := j.db.QueryRow(`SELECT target_root, created_at FROM batches WHERE id = ?`, id).
		Scan(&batch.TargetRoot, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("batch %d %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	batch.CreatedAt = time.Unix(createdAt, 0)

	rows, err := j.db.Query(`SELECT src, dst FROM moves WHERE batch_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var moves []domain.MoveRecord
	for rows.Next() {
		var rec domain.MoveRecord
		if err := rows.Scan(&rec.From, &rec.To); err != nil {
			return nil, nil, err
		}
		moves = append(moves, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	batch.MoveCount = len(moves)
	return batch, moves, nil
}

// ListBatches returns up to limit batches, newest first
func (j *Journal) ListBatches(limit int) ([]domain.MoveBatch, error) {
	rows, err := j.db.Query(`
		SELECT b.id, b.target_root, b.created_at, COUNT(m.batch_id)
		FROM batches b
		LEFT JOIN moves m ON m.batch_id = b.id
		GROUP BY b.id
		ORDER BY b.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []domain.MoveBatch
	for rows.Next() {
		var b domain.MoveBatch
		var createdAt int64
		if err := rows.Scan(&b.ID, &b.TargetRoot, &createdAt, &b.MoveCount); err != nil {
			return nil, err
		}
		b.CreatedAt = time.Unix(createdAt, 0)
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// DeleteBatch removes a batch and its moves after a successful undo
func (j *Journal) DeleteBatch(id int64) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM moves WHERE batch_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM batches WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
