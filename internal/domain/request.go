package domain

import (
	"time"

	"github.com/google/uuid"
)

type MediaKind string

const (
	KindAudio     MediaKind = "audio"
	KindVideo     MediaKind = "video"
	KindMuteVideo MediaKind = "mute-video"
)

// Format returns the fetch-tool format selector for the kind.
func (k MediaKind) Format() string {
	switch k {
	case KindAudio:
		return "bestaudio"
	case KindVideo:
		return "bestvideo+bestaudio"
	case KindMuteVideo:
		return "bestvideo"
	default:
		return ""
	}
}

// Extension returns the fixed file extension used for the kind's output file.
func (k MediaKind) Extension() string {
	if k == KindAudio {
		return ".mp3"
	}
	return ".mp4"
}

// IsAudio reports whether the result is transmitted with the audio transport.
func (k MediaKind) IsAudio() bool {
	return k == KindAudio
}

func (k MediaKind) Valid() bool {
	switch k {
	case KindAudio, KindVideo, KindMuteVideo:
		return true
	}
	return false
}

type DownloadRequest struct {
	ID            string
	RequesterID   int64
	ChatID        int64
	RawURL        string
	Kind          MediaKind
	NormalizedURL string
	ReceivedAt    time.Time
}

func NewDownloadRequest(requesterID, chatID int64, rawURL string, kind MediaKind) DownloadRequest {
	return DownloadRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		ChatID:      chatID,
		RawURL:      rawURL,
		Kind:        kind,
		ReceivedAt:  time.Now(),
	}
}

// WithNormalizedURL returns a copy of the request carrying the normalized URL.
func (r DownloadRequest) WithNormalizedURL(u string) DownloadRequest {
	r.NormalizedURL = u
	return r
}
