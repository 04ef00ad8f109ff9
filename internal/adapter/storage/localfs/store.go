package localfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

const stagingDir = ".staging"

// Store is the flat download directory. Running jobs write into a staging
// subdirectory; finished files are promoted to the top level, which is the
// only level Purge touches.
type Store struct {
	dir     string
	staging string

	mu        sync.Mutex
	lastToken int64
}

var _ port.FileStore = (*Store)(nil)

func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve download dir: %w", domain.ErrDirectoryIO, err)
	}
	staging := filepath.Join(abs, stagingDir)
	if err := os.MkdirAll(staging, 0750); err != nil {
		return nil, fmt.Errorf("%w: create download dir: %w", domain.ErrDirectoryIO, err)
	}
	return &Store{dir: abs, staging: staging}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// nextToken returns a strictly increasing millisecond timestamp.
func (s *Store) nextToken() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastToken {
		now = s.lastToken + 1
	}
	s.lastToken = now
	return now
}

func (s *Store) NewOutputFile(ext string) (domain.OutputFile, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.ContainsAny(ext, `/\`) {
		return domain.OutputFile{}, fmt.Errorf("%w: extension %q", domain.ErrInvalidInput, ext)
	}
	if err := os.MkdirAll(s.staging, 0750); err != nil {
		return domain.OutputFile{}, fmt.Errorf("%w: create staging dir: %w", domain.ErrDirectoryIO, err)
	}
	return domain.OutputFile{
		StagingPath: filepath.Join(s.staging, uuid.NewString()+ext),
		FinalPath:   filepath.Join(s.dir, strconv.FormatInt(s.nextToken(), 10)+ext),
	}, nil
}

func (s *Store) Promote(f domain.OutputFile) error {
	if err := s.checkInside(f.StagingPath, s.staging); err != nil {
		return err
	}
	if err := s.checkInside(f.FinalPath, s.dir); err != nil {
		return err
	}
	if _, err := os.Stat(f.StagingPath); err != nil {
		return fmt.Errorf("%w: output missing: %w", domain.ErrDirectoryIO, err)
	}
	if err := os.Rename(f.StagingPath, f.FinalPath); err != nil {
		return fmt.Errorf("%w: promote output: %w", domain.ErrDirectoryIO, err)
	}
	return nil
}

// Discard removes the staging file and any partial fragments the fetch tool
// left next to it.
func (s *Store) Discard(f domain.OutputFile) error {
	if err := s.checkInside(f.StagingPath, s.staging); err != nil {
		return err
	}
	base := strings.TrimSuffix(f.StagingPath, filepath.Ext(f.StagingPath))
	matches, err := filepath.Glob(base + "*")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDirectoryIO, err)
	}
	var errs []error
	for _, m := range matches {
		if err := os.RemoveAll(m); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: discard staging output: %w", domain.ErrDirectoryIO, errors.Join(errs...))
	}
	return nil
}

func (s *Store) Remove(path string) error {
	if err := s.checkInside(path, s.dir); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: remove %s: %w", domain.ErrDirectoryIO, filepath.Base(path), err)
	}
	return nil
}

func (s *Store) Purge() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: read download dir: %w", domain.ErrDirectoryIO, err)
	}

	removed := 0
	var errs []error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			if !os.IsNotExist(err) {
				errs = append(errs, err)
			}
			continue
		}
		removed++
	}
	if len(errs) > 0 {
		return removed, fmt.Errorf("%w: purge: %w", domain.ErrDirectoryIO, errors.Join(errs...))
	}
	return removed, nil
}

// checkInside rejects paths that do not sit directly in dir.
func (s *Store) checkInside(path, dir string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	clean := filepath.Clean(path)
	if filepath.Dir(clean) != dir {
		return fmt.Errorf("%w: path outside %s", domain.ErrInvalidInput, filepath.Base(dir))
	}
	return nil
}
