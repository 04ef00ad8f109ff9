package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is fixed-width so stored timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultListLimit caps ListRecent when the caller passes no limit.
const DefaultListLimit = 50

// Store keeps the outcome of every download request.
type Store struct {
	db *sql.DB
}

var _ port.JobHistory = (*Store)(nil)

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	dbPath := filepath.Join(dataDir, "fetchbot.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores rec, replacing an earlier record with the same ID.
func (s *Store) Record(ctx context.Context, rec domain.JobRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, requester_id, kind, url, state, error_message, created_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			error_message = excluded.error_message,
			finished_at = excluded.finished_at`,
		rec.ID,
		rec.RequesterID,
		string(rec.Kind),
		rec.URL,
		string(rec.State),
		rec.ErrorMessage,
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record job %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.JobRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, requester_id, kind, url, state, error_message, created_at, finished_at
		FROM jobs WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListRecent returns the most recently finished records first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, requester_id, kind, url, state, error_message, created_at, finished_at
		FROM jobs ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*domain.JobRecord, error) {
	var (
		rec               domain.JobRecord
		kind, state       string
		created, finished string
	)
	if err := sc.Scan(&rec.ID, &rec.RequesterID, &kind, &rec.URL, &state, &rec.ErrorMessage, &created, &finished); err != nil {
		return nil, err
	}
	rec.Kind = domain.MediaKind(kind)
	rec.State = domain.State(state)

	var err error
	if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("parse created_at of job %s: %w", rec.ID, err)
	}
	if rec.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
		return nil, fmt.Errorf("parse finished_at of job %s: %w", rec.ID, err)
	}
	return &rec, nil
}
