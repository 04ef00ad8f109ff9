package port

import "context"

// Messenger is the outbound side of the chat platform.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendHTML(ctx context.Context, chatID int64, html string) error
	SendAudio(ctx context.Context, chatID int64, path string) error
	SendVideo(ctx context.Context, chatID int64, path string) error
}
