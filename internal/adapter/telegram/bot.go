// Package telegram connects the bot to the Telegram Bot API over long polling.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bnema/fetchbot/internal/domain"
	"github.com/bnema/fetchbot/internal/infrastructure/logger"
	"github.com/bnema/fetchbot/internal/port"
)

// MaxUploadSize is the largest file the Bot API accepts from a bot.
const MaxUploadSize = 50 << 20

const pollTimeout = 60

var ErrFileTooLarge = errors.New("file exceeds the upload limit")

// Handler receives every inbound text message.
type Handler func(ctx context.Context, msg domain.InboundMessage)

type Bot struct {
	api *tgbotapi.BotAPI
}

var _ port.Messenger = (*Bot)(nil)

func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	return &Bot{api: api}, nil
}

// NewWithEndpoint talks to a Bot API server at endpoint, a format string
// taking the token and the method name.
func NewWithEndpoint(token, endpoint string, client *http.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	return &Bot{api: api}, nil
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) SendHTML(ctx context.Context, chatID int64, html string) error {
	msg := tgbotapi.NewMessage(chatID, html)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return b.send(ctx, msg)
}

func (b *Bot) SendAudio(ctx context.Context, chatID int64, path string) error {
	if err := checkUpload(path); err != nil {
		return err
	}
	return b.send(ctx, tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path)))
}

func (b *Bot) SendVideo(ctx context.Context, chatID int64, path string) error {
	if err := checkUpload(path); err != nil {
		return err
	}
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.SupportsStreaming = true
	return b.send(ctx, video)
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.api.Send(c); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func checkUpload(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat upload: %w", err)
	}
	if info.Size() > MaxUploadSize {
		return fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}
	return nil
}

// Run polls for updates until ctx is cancelled, handing each message to
// handle in its own goroutine. It returns once every handler has returned.
func (b *Bot) Run(ctx context.Context, handle Handler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	u.AllowedUpdates = []string{"message"}
	updates := b.api.GetUpdatesChan(u)

	logger.Info.Printf("telegram: polling as @%s", b.api.Self.UserName)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Info.Printf("telegram: stopped polling")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg, ok := ToInbound(update.Message)
			if !ok {
				continue
			}
			logger.Debug.Printf("telegram: message from %d: %s", msg.UserID, logger.SanitizeForLog(msg.Text))
			wg.Add(1)
			go func() {
				defer wg.Done()
				handle(ctx, msg)
			}()
		}
	}
}

// ToInbound converts a text message. Non-text messages are skipped.
func ToInbound(m *tgbotapi.Message) (domain.InboundMessage, bool) {
	if m == nil || m.Chat == nil || m.Text == "" {
		return domain.InboundMessage{}, false
	}
	msg := domain.InboundMessage{
		ChatID: m.Chat.ID,
		Text:   m.Text,
	}
	if m.From != nil {
		msg.UserID = m.From.ID
		msg.Username = m.From.UserName
		if msg.Username == "" {
			msg.Username = m.From.FirstName
		}
	}
	return msg, true
}
