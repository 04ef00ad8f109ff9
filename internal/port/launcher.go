package port

import (
	"context"

	"github.com/bnema/fetchbot/internal/domain"
)

// Launcher starts the external fetch tool for one request. Implementations
// must pass the URL and format as discrete arguments, never through a shell.
type Launcher interface {
	Launch(ctx context.Context, spec domain.FetchSpec) (domain.Process, error)
}
