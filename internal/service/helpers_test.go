package service

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bnema/fetchbot/internal/domain"
)

// fakeProcess exits with whatever is sent on exit.
type fakeProcess struct {
	pid        int
	exit       chan error
	terminated atomic.Int32
}

func newFakeProcess(pid int) *fakeProcess {
	return &fakeProcess{pid: pid, exit: make(chan error, 1)}
}

func (p *fakeProcess) PID() int { return p.pid }

func (p *fakeProcess) Wait() error { return <-p.exit }

func (p *fakeProcess) Terminate() error {
	p.terminated.Add(1)
	select {
	case p.exit <- &domain.ProcessError{ExitCode: -1, Stderr: "signal: terminated"}:
	default:
	}
	return nil
}

// scriptedLauncher writes the output file and exits with the configured
// result. Setting hold keeps every process running until released.
type scriptedLauncher struct {
	mu       sync.Mutex
	content  string
	exitErr  error
	spawnErr error
	hold     bool
	launched []*fakeProcess
	specs    []domain.FetchSpec
}

func (l *scriptedLauncher) Launch(_ context.Context, spec domain.FetchSpec) (domain.Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.specs = append(l.specs, spec)
	if l.spawnErr != nil {
		return nil, l.spawnErr
	}
	p := newFakeProcess(1000 + len(l.launched))
	l.launched = append(l.launched, p)
	if l.exitErr == nil {
		if err := os.WriteFile(spec.Output.StagingPath, []byte(l.content), 0600); err != nil {
			return nil, err
		}
	}
	if !l.hold {
		p.exit <- l.exitErr
	}
	return p, nil
}

func (l *scriptedLauncher) process(i int) *fakeProcess {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launched[i]
}

func (l *scriptedLauncher) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.launched)
}

// recordingBus keeps every published event.
type recordingBus struct {
	mu     sync.Mutex
	events []Event
}

func (b *recordingBus) Publish(_ string, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *recordingBus) states() []domain.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.State, 0, len(b.events))
	for _, ev := range b.events {
		out = append(out, ev.State)
	}
	return out
}
