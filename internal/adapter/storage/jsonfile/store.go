package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

// ActionLog appends one JSON object per line to a file. The file is opened
// once and never read back.
type ActionLog struct {
	mu   sync.Mutex
	path string
	file *os.File
}

func NewActionLog(path string) (*ActionLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create action log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open action log: %w", err)
	}
	return &ActionLog{path: path, file: f}, nil
}

func (l *ActionLog) Path() string {
	return l.path
}

func (l *ActionLog) Append(rec domain.ActionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return os.ErrClosed
	}
	if _, err := l.file.Write(data); err != nil {
		return fmt.Errorf("append action: %w", err)
	}
	return nil
}

func (l *ActionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

var _ port.ActionLog = (*ActionLog)(nil)
