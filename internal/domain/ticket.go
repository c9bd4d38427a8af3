package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// TicketResponse is one entry in a ticket's append-only response thread.
type TicketResponse struct {
	ID          int       `json:"id"`
	ResponderID int64     `json:"responder_id"`
	Response    string    `json:"response"`
	IsAdmin     bool      `json:"is_admin"`
	Timestamp   time.Time `json:"timestamp"`
}

// Ticket is the aggregate for a user support request.
type Ticket struct {
	ID         int              `json:"id"`
	UserID     int64            `json:"user_id"`
	Username   string           `json:"username"`
	Category   string           `json:"category"`
	Message    string           `json:"message"`
	Status     TicketStatus     `json:"status"`
	Priority   TicketPriority   `json:"priority"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Responses  []TicketResponse `json:"responses"`
	AssignedTo *int64           `json:"assigned_to"`
	Resolution *string          `json:"resolution"`
	Escalated  bool             `json:"escalated,omitempty"`
	ResolvedBy *int64           `json:"resolved_by,omitempty"`
	UpdatedBy  *int64           `json:"updated_by,omitempty"`
}

// TicketDocument is the persisted ticket collection with its running counters.
// active_tickets must equal the number of tickets with status open.
type TicketDocument struct {
	Tickets         []Ticket `json:"tickets"`
	NextTicketID    int      `json:"next_ticket_id"`
	ActiveTickets   int      `json:"active_tickets"`
	ResolvedTickets int      `json:"resolved_tickets"`
}

// NewTicketDocument seeds an empty collection.
func NewTicketDocument() *TicketDocument {
	return &TicketDocument{
		Tickets:      []Ticket{},
		NextTicketID: 1,
	}
}

// ResponseConfigDocument holds canned templates and the auto-response toggle.
type ResponseConfigDocument struct {
	Responses            []TicketResponse  `json:"responses"`
	AutoResponsesEnabled bool              `json:"auto_responses_enabled"`
	ResponseTemplates    map[string]string `json:"response_templates"`
}

// NewResponseConfigDocument seeds the default response configuration.
func NewResponseConfigDocument() *ResponseConfigDocument {
	return &ResponseConfigDocument{
		Responses:            []TicketResponse{},
		AutoResponsesEnabled: true,
		ResponseTemplates: map[string]string{
			"greeting":   "Hello! How can I help you today?",
			"closing":    "Thank you for contacting us! Have a great day!",
			"escalation": "I'm escalating this to our admin team. You'll receive a response soon.",
		},
	}
}

// StatsDocument is the denormalized support statistics cache. It must stay
// consistent with the ticket document after every lifecycle mutation.
type StatsDocument struct {
	TotalTickets         int            `json:"total_tickets"`
	ResolvedTickets      int            `json:"resolved_tickets"`
	AvgResponseTime      float64        `json:"avg_response_time"`
	CustomerSatisfaction float64        `json:"customer_satisfaction"`
	DailyTickets         map[string]int `json:"daily_tickets"`
	CategoryStats        map[string]int `json:"category_stats"`
}

// NewStatsDocument seeds empty statistics.
func NewStatsDocument() *StatsDocument {
	return &StatsDocument{
		DailyTickets:  map[string]int{},
		CategoryStats: map[string]int{},
	}
}

// SupportCategories is the ordered set of categories offered during ticket creation.
var SupportCategories = []string{
	"Order Issues",
	"Payment Problems",
	"Product Questions",
	"Technical Support",
	"Account Issues",
	"General Inquiry",
}
