package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
	"github.com/bnema/fetchbot/internal/templates"
)

const (
	MsgStopping       = "Stopping the current download."
	MsgNothingToStop  = "No download in progress."
	MsgDeleted        = "Deleted %d files from the download folder."
	MsgDeleteFailed   = "Some files could not be deleted."
	MsgGreeting       = "Hi! Send /help to see what I can do."
	MsgInvalidCommand = "Invalid command. Send /help to see the available commands."
)

// Metric labels for messages that are not known commands.
const (
	commandLabelText    = "text"
	commandLabelUnknown = "unknown"
)

var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
	"hola":  {},
	"salut": {},
	"yo":    {},
}

var downloadCommands = map[string]domain.MediaKind{
	"/audio":      domain.KindAudio,
	"/video":      domain.KindVideo,
	"/mute-video": domain.KindMuteVideo,
}

// Sweeper empties the download directory on demand.
type Sweeper interface {
	Sweep() (int, error)
}

type Dispatcher struct {
	pipeline  *Pipeline
	registry  *Registry
	sweeper   Sweeper
	messenger port.Messenger
	actions   port.ActionLog
	metrics   port.Metrics
	domains   []string
}

func NewDispatcher(
	pipeline *Pipeline,
	registry *Registry,
	sweeper Sweeper,
	messenger port.Messenger,
	actions port.ActionLog,
	metrics port.Metrics,
	domains []string,
) *Dispatcher {
	return &Dispatcher{
		pipeline:  pipeline,
		registry:  registry,
		sweeper:   sweeper,
		messenger: messenger,
		actions:   actions,
		metrics:   metrics,
		domains:   domains,
	}
}

// Dispatch handles one inbound chat message. Download commands block until
// the request reaches a resting state, so callers run each message in its
// own goroutine.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.InboundMessage) {
	d.logAction(msg)

	name, arg := parseCommand(msg.Text)
	d.count(name)

	switch {
	case name == "/start":
		d.sendTemplate(ctx, msg.ChatID, "welcome", func() (string, error) {
			return templates.RenderString(ctx, templates.Welcome(msg.Username, d.domains))
		})
	case name == "/help":
		d.sendTemplate(ctx, msg.ChatID, "help", func() (string, error) {
			return templates.RenderString(ctx, templates.Help(d.domains))
		})
	case name == "/stop":
		d.stop(ctx, msg.ChatID)
	case name == "/delete":
		d.purge(ctx, msg.ChatID)
	case isDownloadCommand(name):
		req := domain.NewDownloadRequest(msg.UserID, msg.ChatID, arg, downloadCommands[name])
		logger.Info.Printf("request %s: %s %s from user %d", req.ID, req.Kind, logger.SanitizeForLog(arg), msg.UserID)
		d.pipeline.Handle(ctx, req)
	case name == "" && isGreeting(msg.Text):
		d.reply(ctx, msg.ChatID, MsgGreeting)
	default:
		d.reply(ctx, msg.ChatID, MsgInvalidCommand)
	}
}

func (d *Dispatcher) stop(ctx context.Context, chatID int64) {
	if d.registry.Terminate() {
		d.reply(ctx, chatID, MsgStopping)
		return
	}
	d.reply(ctx, chatID, MsgNothingToStop)
}

func (d *Dispatcher) purge(ctx context.Context, chatID int64) {
	removed, err := d.sweeper.Sweep()
	if err != nil {
		d.reply(ctx, chatID, MsgDeleteFailed)
		return
	}
	d.reply(ctx, chatID, formatDeleted(removed))
}

func (d *Dispatcher) sendTemplate(ctx context.Context, chatID int64, name string, render func() (string, error)) {
	html, err := render()
	if err != nil {
		logger.Error.Printf("render %s message: %v", name, err)
		return
	}
	if err := d.messenger.SendHTML(ctx, chatID, html); err != nil {
		logger.Error.Printf("send %s message to chat %d: %v", name, chatID, err)
	}
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string) {
	if err := d.messenger.SendText(ctx, chatID, text); err != nil {
		logger.Error.Printf("send reply to chat %d: %v", chatID, err)
	}
}

func (d *Dispatcher) logAction(msg domain.InboundMessage) {
	if d.actions == nil {
		return
	}
	if err := d.actions.Append(domain.NewActionRecord(msg.UserID, msg.Text)); err != nil {
		logger.Warn.Printf("append action log: %v", err)
	}
}

func (d *Dispatcher) count(name string) {
	if d.metrics == nil {
		return
	}
	switch {
	case name == "":
		d.metrics.RecordCommand(commandLabelText)
	case isKnownCommand(name):
		d.metrics.RecordCommand(strings.TrimPrefix(name, "/"))
	default:
		d.metrics.RecordCommand(commandLabelUnknown)
	}
}

// parseCommand splits "/cmd@bot arg ..." into the lowercased command and its
// first argument. Text that is not a command yields an empty name.
func parseCommand(text string) (string, string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", ""
	}
	name := strings.ToLower(fields[0])
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	return name, arg
}

func isDownloadCommand(name string) bool {
	_, ok := downloadCommands[name]
	return ok
}

func isKnownCommand(name string) bool {
	switch name {
	case "/start", "/help", "/stop", "/delete":
		return true
	}
	return isDownloadCommand(name)
}

func isGreeting(text string) bool {
	word := strings.ToLower(strings.Trim(strings.TrimSpace(text), "!.,?"))
	_, ok := greetings[word]
	return ok
}

func formatDeleted(n int) string {
	if n == 1 {
		return "Deleted 1 file from the download folder."
	}
	return fmt.Sprintf(MsgDeleted, n)
}
