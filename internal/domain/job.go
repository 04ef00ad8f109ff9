package domain

import (
	"time"
)

type State string

const (
	StateReceived       State = "received"
	StateValidating     State = "validating"
	StateAdmitted       State = "admitted"
	StateRejected       State = "rejected"
	StateRunning        State = "running"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
	StateDelivered      State = "delivered"
	StateDeliveryFailed State = "delivery_failed"
	StateCleaned        State = "cleaned"
)

// IsTerminal reports whether no further transition can follow the state.
func (s State) IsTerminal() bool {
	switch s {
	case StateRejected, StateFailed, StateDeliveryFailed, StateCleaned:
		return true
	}
	return false
}

// Process is a running fetch-tool child process.
type Process interface {
	PID() int
	// Wait blocks until the process exits. A non-zero exit yields a *ProcessError.
	Wait() error
	Terminate() error
}

// JobHandle references the single in-flight process tracked for cancellation.
type JobHandle struct {
	ID         string
	PID        int
	OutputPath string
	StartedAt  time.Time
	Process    Process
}

// OutputFile is written under StagingPath by the fetch tool and renamed to
// FinalPath once the process has exited successfully.
type OutputFile struct {
	StagingPath string
	FinalPath   string
}

type FetchSpec struct {
	URL    string
	Format string
	Kind   MediaKind
	Output OutputFile
}

type JobRecord struct {
	ID           string    `json:"id"`
	RequesterID  int64     `json:"requester_id"`
	Kind         MediaKind `json:"kind"`
	URL          string    `json:"url"`
	State        State     `json:"state"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// ActionRecord is one line of the append-only action log.
type ActionRecord struct {
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
}

const UnknownIP = "N/A"

func NewActionRecord(userID int64, action string) ActionRecord {
	return ActionRecord{
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().UTC(),
		IP:        UnknownIP,
	}
}

// InboundMessage is a chat message as seen by the command dispatcher.
type InboundMessage struct {
	UserID   int64
	ChatID   int64
	Username string
	Text     string
}
