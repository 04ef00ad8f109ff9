package port

import (
	"time"

	"github.com/bnema/fetchbot/internal/domain"
)

type Metrics interface {
	SetActive(n int)
	SetCapacity(n int)
	RecordOutcome(kind domain.MediaKind, state domain.State)
	RecordJobDuration(kind domain.MediaKind, d time.Duration)
	RecordFileSize(kind domain.MediaKind, bytes int64)
	RecordCommand(command string)
	RecordSweep(removed int, err error)
}
