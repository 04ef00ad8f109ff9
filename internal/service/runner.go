package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
)

// Job is the completion handle of one fetch-tool run.
type Job struct {
	ID        string
	StartedAt time.Time

	done     chan struct{}
	path     string
	err      error
	finished time.Time
}

func newJob() *Job {
	return &Job{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

func (j *Job) finish(path string, err error) {
	j.path = path
	j.err = err
	j.finished = time.Now()
	close(j.done)
}

// Done is closed once the job has a result.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job ends and returns the delivered file path, or a
// *domain.ProcessError when the tool failed.
func (j *Job) Wait() (string, error) {
	<-j.done
	return j.path, j.err
}

// Duration is the wall time of the run; zero while the job is running.
func (j *Job) Duration() time.Duration {
	select {
	case <-j.done:
		return j.finished.Sub(j.StartedAt)
	default:
		return 0
	}
}

// trackedProcess remembers whether the registry asked the process to stop,
// so an exit caused by /stop can be told apart from a tool failure.
type trackedProcess struct {
	domain.Process
	terminated atomic.Bool
}

func (p *trackedProcess) Terminate() error {
	p.terminated.Store(true)
	return p.Process.Terminate()
}

// Runner launches fetch jobs and owns their lifecycle: registry tracking,
// admission release, and promotion of the output file.
type Runner struct {
	launcher  port.Launcher
	files     port.FileStore
	admission *Admission
	registry  *Registry
}

func NewRunner(launcher port.Launcher, files port.FileStore, admission *Admission, registry *Registry) *Runner {
	return &Runner{
		launcher:  launcher,
		files:     files,
		admission: admission,
		registry:  registry,
	}
}

// Run starts spec in the background and returns at once. The caller must
// hold an admission slot; Run releases it exactly once when the job ends,
// whether the process succeeds, fails, is terminated, or never starts.
func (r *Runner) Run(ctx context.Context, spec domain.FetchSpec) *Job {
	job := newJob()

	var releaseOnce sync.Once
	release := func() {
		releaseOnce.Do(r.admission.Release)
	}

	proc, err := r.launcher.Launch(ctx, spec)
	if err != nil {
		release()
		r.discard(job.ID, spec.Output)
		logger.Error.Printf("job %s: launch failed: %v", job.ID, err)
		job.finish("", &domain.ProcessError{ExitCode: -1, Err: err})
		return job
	}

	tracked := &trackedProcess{Process: proc}
	handle := &domain.JobHandle{
		ID:         job.ID,
		PID:        proc.PID(),
		OutputPath: spec.Output.FinalPath,
		StartedAt:  job.StartedAt,
		Process:    tracked,
	}
	r.registry.Set(handle)
	logger.Info.Printf("job %s: started pid %d for %s (%s)", job.ID, handle.PID, logger.SanitizeForLog(spec.URL), spec.Format)

	go func() {
		waitErr := proc.Wait()
		release()
		r.registry.ClearIf(handle)
		path, err := r.complete(job.ID, spec, tracked, waitErr)
		job.finish(path, err)
	}()

	return job
}

func (r *Runner) complete(jobID string, spec domain.FetchSpec, proc *trackedProcess, waitErr error) (string, error) {
	if waitErr != nil {
		r.discard(jobID, spec.Output)

		var procErr *domain.ProcessError
		if !errors.As(waitErr, &procErr) {
			procErr = &domain.ProcessError{ExitCode: -1, Err: waitErr}
		}
		if proc.terminated.Load() {
			procErr = &domain.ProcessError{
				ExitCode: procErr.ExitCode,
				Stderr:   procErr.Stderr,
				Err:      domain.ErrJobTerminated,
			}
			logger.Info.Printf("job %s: stopped on request", jobID)
		} else {
			logger.Warn.Printf("job %s: %s", jobID, logger.SanitizeForLog(procErr.Error()))
		}
		return "", procErr
	}

	if err := r.files.Promote(spec.Output); err != nil {
		r.discard(jobID, spec.Output)
		logger.Error.Printf("job %s: promote output: %v", jobID, err)
		return "", fmt.Errorf("%w: promote output: %w", domain.ErrDirectoryIO, err)
	}

	logger.Info.Printf("job %s: finished, output %s", jobID, spec.Output.FinalPath)
	return spec.Output.FinalPath, nil
}

func (r *Runner) discard(jobID string, out domain.OutputFile) {
	if err := r.files.Discard(out); err != nil {
		logger.Warn.Printf("job %s: discard staging output: %v", jobID, err)
	}
}
