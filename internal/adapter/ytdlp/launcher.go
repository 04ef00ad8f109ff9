// Package ytdlp runs the yt-dlp command-line tool as the fetch backend.
package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/port"
)

const DefaultBinary = "yt-dlp"

// waitDelay bounds how long Wait keeps reading stderr after the tool was
// signalled, in case a descendant escaped its process group.
const waitDelay = 10 * time.Second

var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
	ErrInvalidURL  = errors.New("url is not a valid fetch target")
)

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

func validateURL(u string) error {
	if u == "" || strings.ContainsRune(u, 0) || strings.HasPrefix(u, "-") {
		return ErrInvalidURL
	}
	return nil
}

type Launcher struct {
	binary string
}

var _ port.Launcher = (*Launcher)(nil)

func NewLauncher(binary string) *Launcher {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Launcher{binary: binary}
}

// outputTemplate lets yt-dlp pick the intermediate extension so audio
// extraction and remuxing land on the staging path itself.
func outputTemplate(stagingPath string) string {
	stem := strings.TrimSuffix(stagingPath, filepath.Ext(stagingPath))
	return strings.ReplaceAll(stem, "%", "%%") + ".%(ext)s"
}

// args builds the argument vector. The URL follows "--" so it is never read
// as an option.
func args(spec domain.FetchSpec) []string {
	a := []string{
		"-f", spec.Format,
		"-o", outputTemplate(spec.Output.StagingPath),
	}
	if spec.Kind.IsAudio() {
		a = append(a, "-x", "--audio-format", "mp3")
	} else {
		a = append(a, "--merge-output-format", "mp4", "--remux-video", "mp4")
	}
	a = append(a, "--no-playlist", "--", spec.URL)
	return a
}

func (l *Launcher) Launch(ctx context.Context, spec domain.FetchSpec) (domain.Process, error) {
	if err := validatePath(spec.Output.StagingPath); err != nil {
		return nil, fmt.Errorf("output path: %w", err)
	}
	if err := validateURL(spec.URL); err != nil {
		return nil, err
	}
	if spec.Format == "" {
		return nil, fmt.Errorf("%w: empty format", domain.ErrInvalidInput)
	}

	cmd := exec.CommandContext(ctx, l.binary, args(spec)...)
	p := &process{cmd: cmd}
	cmd.Stderr = &p.stderr
	// The tool runs in its own process group so that signals also reach
	// the ffmpeg children it spawns.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = p.signalGroup
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", l.binary, err)
	}
	return p, nil
}

type process struct {
	cmd    *exec.Cmd
	stderr bytes.Buffer

	waitOnce sync.Once
	waitErr  error
	exited   atomic.Bool
}

func (p *process) PID() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the tool exits. A non-zero exit is reported as a
// *domain.ProcessError carrying the captured stderr.
func (p *process) Wait() error {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()
		p.exited.Store(true)
		if err == nil {
			return
		}
		procErr := &domain.ProcessError{
			ExitCode: -1,
			Stderr:   strings.TrimSpace(p.stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			procErr.ExitCode = exitErr.ExitCode()
		}
		p.waitErr = procErr
	})
	return p.waitErr
}

// Terminate sends SIGTERM to the tool's whole process group. Signalling a
// tool that already exited is not an error.
func (p *process) Terminate() error {
	if err := p.signalGroup(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func (p *process) signalGroup() error {
	if p.exited.Load() {
		return os.ErrProcessDone
	}
	pid := p.cmd.Process.Pid
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return fmt.Errorf("signal process group %d: %w", pid, err)
	}
	return nil
}
