package events

import (
	"time"

	"github.com/spec-kit/support-bot/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketResponseAdded EventType = "ticket_response_added"
	EventTicketResolved      EventType = "ticket_resolved"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketEscalated     EventType = "ticket_escalated"
	EventHumanAgentRequested EventType = "human_agent_requested"
	EventReviewSubmitted     EventType = "review_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int         `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Ticket domain.Ticket `json:"ticket"`
}

// TicketResponseAddedPayload payload.
type TicketResponseAddedPayload struct {
	Ticket   domain.Ticket         `json:"ticket"`
	Response domain.TicketResponse `json:"response"`
}

// TicketResolvedPayload payload.
type TicketResolvedPayload struct {
	Ticket domain.Ticket `json:"ticket"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	Ticket    domain.Ticket       `json:"ticket"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Note      string              `json:"note,omitempty"`
}

// TicketEscalatedPayload payload.
type TicketEscalatedPayload struct {
	Ticket domain.Ticket `json:"ticket"`
}

// HumanAgentRequestedPayload payload.
type HumanAgentRequestedPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// ReviewSubmittedPayload payload.
type ReviewSubmittedPayload struct {
	Review domain.Review `json:"review"`
}
