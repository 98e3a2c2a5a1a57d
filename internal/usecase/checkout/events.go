package checkout

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOutcome EventType = "outcome"
	EventClosed  EventType = "closed"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityPending Severity = "pending"
	SeverityFailure Severity = "failure"
	SeverityNone    Severity = "none"
)

// Outcome is the user-facing notification for a terminal session.
type Outcome struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message,omitempty"`
}

func (o Outcome) Silent() bool {
	return o.Severity == SeverityNone
}

// Event is what downstream UI consumes: one outcome (unless cancelled)
// followed by one closed signal per session.
type Event struct {
	Type       EventType `json:"type"`
	SessionID  uuid.UUID `json:"sessionId"`
	Reference  string    `json:"reference,omitempty"`
	Rail       string    `json:"rail"`
	State      string    `json:"state"`
	Outcome    *Outcome  `json:"outcome,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
