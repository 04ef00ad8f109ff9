package port

import (
	"context"

	"github.com/bnema/fetchbot/internal/domain"
)

// FileStore owns the flat download directory.
type FileStore interface {
	// NewOutputFile allocates a job-scoped staging path and the final path
	// the file is promoted to after a successful download.
	NewOutputFile(ext string) (domain.OutputFile, error)
	Promote(f domain.OutputFile) error
	Discard(f domain.OutputFile) error
	Remove(path string) error
	// Purge deletes every file at the top level of the directory and
	// returns how many were removed.
	Purge() (int, error)
}

// ActionLog is the append-only, write-only record of user actions.
type ActionLog interface {
	Append(rec domain.ActionRecord) error
}

// JobHistory keeps the terminal outcome of each download request.
type JobHistory interface {
	Record(ctx context.Context, rec domain.JobRecord) error
	Get(ctx context.Context, id string) (*domain.JobRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.JobRecord, error)
}
