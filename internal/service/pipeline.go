package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
	"github.com/bnema/fetchbot/internal/validation"
)

// User-facing notices. Each terminal branch of a request sends exactly one.
const (
	MsgMissingURL      = "Please add a link after the command, for example: /audio https://www.youtube.com/watch?v=..."
	MsgInvalidURL      = "Invalid URL. Please send a link starting with http:// or https://."
	MsgUnsupportedURL  = "Unsupported URL. This site is not on the list of supported platforms."
	MsgQueueFull       = "Too many downloads in progress. Please try again in a moment."
	MsgDownloadFailed  = "Download failed. Please check the link and try again."
	MsgDownloadStopped = "Download stopped."
	MsgDeliveryFailed  = "The download finished but the file could not be sent."
	MsgInternalError   = "Something went wrong while preparing the download."
)

// noticeTimeout bounds the terminal notice and history write, which run on
// a context detached from the request so they survive shutdown.
const noticeTimeout = 15 * time.Second

// maxNoticeLen keeps error notices below the chat platform message limit.
const maxNoticeLen = 3500

type PipelineConfig struct {
	AllowList []string
}

// Pipeline drives one download request from receipt to cleanup.
type Pipeline struct {
	runner    *Runner
	admission *Admission
	files     port.FileStore
	messenger port.Messenger
	history   port.JobHistory
	metrics   port.Metrics
	events    EventPublisher
	allowList []string
}

func NewPipeline(
	runner *Runner,
	admission *Admission,
	files port.FileStore,
	messenger port.Messenger,
	history port.JobHistory,
	metrics port.Metrics,
	events EventPublisher,
	cfg PipelineConfig,
) *Pipeline {
	allow := cfg.AllowList
	if len(allow) == 0 {
		allow = validation.DefaultSupportedDomains
	}
	return &Pipeline{
		runner:    runner,
		admission: admission,
		files:     files,
		messenger: messenger,
		history:   history,
		metrics:   metrics,
		events:    events,
		allowList: allow,
	}
}

// run carries the per-request bookkeeping through the state machine.
type run struct {
	p     *Pipeline
	req   domain.DownloadRequest
	state domain.State
}

func (r *run) enter(state domain.State, msg string) {
	r.state = state
	logger.Debug.Printf("request %s: %s", r.req.ID, state)
	if r.p.events != nil {
		r.p.events.Publish(r.req.ID, Event{
			RequestID: r.req.ID,
			State:     state,
			Message:   msg,
			At:        time.Now(),
		})
	}
}

// Handle processes req to a resting state and returns it. The returned state
// is one of Rejected, Failed, DeliveryFailed, Cleaned, or Delivered when the
// file was sent but could not be removed afterwards.
func (p *Pipeline) Handle(ctx context.Context, req domain.DownloadRequest) domain.State {
	r := &run{p: p, req: req}
	r.enter(domain.StateReceived, "")

	r.enter(domain.StateValidating, "")
	if strings.TrimSpace(req.RawURL) == "" {
		return p.reject(ctx, r, domain.ErrInvalidInput, MsgMissingURL)
	}
	if !validation.HasHTTPScheme(req.RawURL) {
		return p.reject(ctx, r, domain.ErrInvalidInput, MsgInvalidURL)
	}
	r.req = req.WithNormalizedURL(validation.NormalizeURL(req.RawURL))
	if !validation.IsSupported(r.req.NormalizedURL, p.allowList) {
		return p.reject(ctx, r, domain.ErrUnsupportedDomain, MsgUnsupportedURL)
	}

	if !p.admission.TryAdmit() {
		return p.reject(ctx, r, domain.ErrQueueFull, MsgQueueFull)
	}
	r.enter(domain.StateAdmitted, "")

	out, err := p.files.NewOutputFile(req.Kind.Extension())
	if err != nil {
		p.admission.Release()
		logger.Error.Printf("request %s: allocate output: %v", req.ID, err)
		return p.finish(ctx, r, domain.StateFailed, fmt.Errorf("%w: %w", domain.ErrDirectoryIO, err), MsgInternalError)
	}

	r.enter(domain.StateRunning, "")
	job := p.runner.Run(ctx, domain.FetchSpec{
		URL:    r.req.NormalizedURL,
		Format: req.Kind.Format(),
		Kind:   req.Kind,
		Output: out,
	})
	path, err := job.Wait()
	if p.metrics != nil {
		p.metrics.RecordJobDuration(req.Kind, job.Duration())
	}
	if err != nil {
		return p.finish(ctx, r, domain.StateFailed, err, failureNotice(err))
	}

	r.enter(domain.StateSucceeded, "")
	if p.metrics != nil {
		if info, statErr := os.Stat(path); statErr == nil {
			p.metrics.RecordFileSize(req.Kind, info.Size())
		}
	}

	if err := p.deliver(ctx, req, path); err != nil {
		logger.Error.Printf("request %s: delivery: %v", req.ID, err)
		return p.finish(ctx, r, domain.StateDeliveryFailed, err, MsgDeliveryFailed)
	}
	r.enter(domain.StateDelivered, "")

	if err := p.files.Remove(path); err != nil {
		// The file stays until the next sweep; the user already has it.
		logger.Warn.Printf("request %s: remove delivered file: %v", req.ID, err)
		return p.finish(ctx, r, domain.StateDelivered, fmt.Errorf("%w: %w", domain.ErrDirectoryIO, err), "")
	}
	return p.finish(ctx, r, domain.StateCleaned, nil, "")
}

func (p *Pipeline) deliver(ctx context.Context, req domain.DownloadRequest, path string) error {
	var err error
	if req.Kind.IsAudio() {
		err = p.messenger.SendAudio(ctx, req.ChatID, path)
	} else {
		err = p.messenger.SendVideo(ctx, req.ChatID, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
	}
	return nil
}

func (p *Pipeline) reject(ctx context.Context, r *run, cause error, notice string) domain.State {
	logger.Info.Printf("request %s rejected: %v (%s)", r.req.ID, cause, logger.SanitizeForLog(r.req.RawURL))
	return p.finish(ctx, r, domain.StateRejected, cause, notice)
}

// finish publishes the resting state, sends the notice when there is one,
// and records the outcome.
func (p *Pipeline) finish(ctx context.Context, r *run, state domain.State, cause error, notice string) domain.State {
	r.state = state
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), noticeTimeout)
	defer cancel()
	if notice != "" {
		if err := p.messenger.SendText(ctx, r.req.ChatID, notice); err != nil {
			logger.Error.Printf("request %s: send notice: %v", r.req.ID, err)
		}
	}

	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if p.metrics != nil {
		p.metrics.RecordOutcome(r.req.Kind, state)
	}
	// History first, so readers that miss the final event find the record.
	p.record(ctx, r.req, state, msg)
	if p.events != nil {
		p.events.Publish(r.req.ID, Event{
			RequestID: r.req.ID,
			State:     state,
			Message:   msg,
			At:        time.Now(),
			Final:     true,
		})
	}
	return state
}

func (p *Pipeline) record(ctx context.Context, req domain.DownloadRequest, state domain.State, msg string) {
	if p.history == nil {
		return
	}
	url := req.NormalizedURL
	if url == "" {
		url = req.RawURL
	}
	rec := domain.JobRecord{
		ID:           req.ID,
		RequesterID:  req.RequesterID,
		Kind:         req.Kind,
		URL:          url,
		State:        state,
		ErrorMessage: msg,
		CreatedAt:    req.ReceivedAt,
		FinishedAt:   time.Now().UTC(),
	}
	if err := p.history.Record(ctx, rec); err != nil {
		logger.Warn.Printf("request %s: record history: %v", req.ID, err)
	}
}

// failureNotice turns a job error into the text shown to the requester.
func failureNotice(err error) string {
	if errors.Is(err, domain.ErrJobTerminated) {
		return MsgDownloadStopped
	}
	var procErr *domain.ProcessError
	if errors.As(err, &procErr) {
		text := strings.TrimSpace(procErr.Stderr)
		if text == "" && procErr.Err != nil {
			text = procErr.Err.Error()
		}
		if text != "" {
			return truncate("Download failed: "+text, maxNoticeLen)
		}
	}
	return MsgDownloadFailed
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
