package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid url")
	ErrUnsupportedDomain = errors.New("unsupported url")
	ErrQueueFull         = errors.New("download queue is full")
	ErrProcessFailure    = errors.New("fetch process failed")
	ErrDeliveryFailure   = errors.New("delivery failed")
	ErrDirectoryIO       = errors.New("download directory operation failed")
	ErrJobTerminated     = errors.New("download was stopped")
)

// ProcessError carries the diagnostics of a failed fetch-tool run.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("fetch process exited with code %d: %s", e.ExitCode, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch process failed: %v", e.Err)
	}
	return fmt.Sprintf("fetch process exited with code %d", e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func (e *ProcessError) Is(target error) bool {
	return target == ErrProcessFailure
}
