package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/events"
	"github.com/spec-kit/support-bot/internal/repository"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

// SupportService owns the ticket collection and all counter bookkeeping.
// Every mutation goes through this service; the escalation monitor and the
// notification path never touch the documents directly. A single mutex
// serializes the request path and the background scan.
type SupportService struct {
	mu         sync.Mutex
	tickets    *domain.TicketDocument
	config     *domain.ResponseConfigDocument
	stats      *domain.StatsDocument
	store      repository.TicketStore
	configs    repository.ResponseStore
	statsStore repository.StatsStore
	dispatcher events.Dispatcher
	logger     *zap.Logger

	now func() time.Time
}

// SupportDependencies bundles collaborators for the support service.
type SupportDependencies struct {
	TicketStore   repository.TicketStore
	ResponseStore repository.ResponseStore
	StatsStore    repository.StatsStore
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// SupportOverview is the computed statistics rollup.
type SupportOverview struct {
	TotalTickets         int            `json:"total_tickets"`
	OpenTickets          int            `json:"open_tickets"`
	ResolvedTickets      int            `json:"resolved_tickets"`
	AvgResolutionHours   float64        `json:"avg_response_time_hours"`
	CategoryStats        map[string]int `json:"category_stats"`
	DailyTickets         map[string]int `json:"daily_tickets"`
	AutoResponsesEnabled bool           `json:"auto_responses_enabled"`
}

// NewSupportService loads the persisted documents and constructs the service.
func NewSupportService(deps SupportDependencies) (*SupportService, error) {
	tickets, err := deps.TicketStore.Load()
	if err != nil {
		return nil, err
	}
	config, err := deps.ResponseStore.Load()
	if err != nil {
		return nil, err
	}
	stats, err := deps.StatsStore.Load()
	if err != nil {
		return nil, err
	}
	return &SupportService{
		tickets:    tickets,
		config:     config,
		stats:      stats,
		store:      deps.TicketStore,
		configs:    deps.ResponseStore,
		statsStore: deps.StatsStore,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        time.Now,
	}, nil
}

// CreateTicket assigns the next sequential id and appends a new open ticket.
func (s *SupportService) CreateTicket(ctx context.Context, userID int64, username, category, message string) (int, error) {
	if strings.TrimSpace(message) == "" {
		return 0, apperrors.NewValidationError("ticket message required", nil)
	}
	if strings.TrimSpace(category) == "" {
		return 0, apperrors.NewValidationError("ticket category required", nil)
	}

	s.mu.Lock()
	now := s.now()
	ticket := domain.Ticket{
		ID:        s.tickets.NextTicketID,
		UserID:    userID,
		Username:  username,
		Category:  category,
		Message:   message,
		Status:    domain.TicketStatusOpen,
		Priority:  domain.TicketPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
		Responses: []domain.TicketResponse{},
	}

	s.tickets.Tickets = append(s.tickets.Tickets, ticket)
	s.tickets.NextTicketID++
	s.tickets.ActiveTickets++
	s.stats.TotalTickets++
	s.stats.DailyTickets[now.Format("2006-01-02")]++
	s.stats.CategoryStats[category]++

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload:  events.TicketCreatedPayload{Ticket: ticket},
	})
	return ticket.ID, nil
}

// TicketsByUser returns the user's tickets in creation order.
func (s *SupportService) TicketsByUser(userID int64) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []domain.Ticket{}
	for i := range s.tickets.Tickets {
		if s.tickets.Tickets[i].UserID == userID {
			result = append(result, snapshotTicket(&s.tickets.Tickets[i]))
		}
	}
	return result
}

// Tickets returns every ticket, optionally filtered by status.
func (s *SupportService) Tickets(status domain.TicketStatus) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []domain.Ticket{}
	for i := range s.tickets.Tickets {
		if status == "" || s.tickets.Tickets[i].Status == status {
			result = append(result, snapshotTicket(&s.tickets.Tickets[i]))
		}
	}
	return result
}

// TicketByID fetches a single ticket.
func (s *SupportService) TicketByID(ticketID int) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket := s.findLocked(ticketID)
	if ticket == nil {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	return snapshotTicket(ticket), nil
}

// AddResponse appends a response with a sequential per-ticket id. Admin
// responses trigger a user notification through the event stream.
func (s *SupportService) AddResponse(ctx context.Context, ticketID int, responderID int64, text string, isAdmin bool) (domain.TicketResponse, error) {
	if strings.TrimSpace(text) == "" {
		return domain.TicketResponse{}, apperrors.NewValidationError("response text required", nil)
	}

	s.mu.Lock()
	ticket := s.findLocked(ticketID)
	if ticket == nil {
		s.mu.Unlock()
		return domain.TicketResponse{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	response := domain.TicketResponse{
		ID:          len(ticket.Responses) + 1,
		ResponderID: responderID,
		Response:    text,
		IsAdmin:     isAdmin,
		Timestamp:   s.now(),
	}
	ticket.Responses = append(ticket.Responses, response)
	ticket.UpdatedAt = response.Timestamp
	snapshot := snapshotTicket(ticket)

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return domain.TicketResponse{}, err
	}

	if isAdmin {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketResponseAdded,
			TicketID: ticketID,
			Payload:  events.TicketResponseAddedPayload{Ticket: snapshot, Response: response},
		})
	}
	return response, nil
}

// Resolve marks a ticket resolved. A second resolve on the same ticket is
// rejected so the active/resolved counters never drift.
func (s *SupportService) Resolve(ctx context.Context, ticketID int, resolution string, adminID int64) error {
	if strings.TrimSpace(resolution) == "" {
		return apperrors.NewValidationError("resolution text required", nil)
	}

	s.mu.Lock()
	ticket := s.findLocked(ticketID)
	if ticket == nil {
		s.mu.Unlock()
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	if ticket.Status == domain.TicketStatusResolved {
		s.mu.Unlock()
		return apperrors.NewConflict("ticket already resolved", map[string]any{"ticket_id": ticketID})
	}

	if ticket.Status == domain.TicketStatusOpen {
		s.decrementActiveLocked()
	}
	ticket.Status = domain.TicketStatusResolved
	ticket.Resolution = &resolution
	ticket.ResolvedBy = &adminID
	ticket.UpdatedAt = s.now()
	s.tickets.ResolvedTickets++
	s.stats.ResolvedTickets++
	snapshot := snapshotTicket(ticket)

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketResolved,
		TicketID: ticketID,
		Payload:  events.TicketResolvedPayload{Ticket: snapshot},
	})
	return nil
}

// UpdateStatus moves a ticket to a new lifecycle state, keeping the
// active-ticket counter in step with open transitions. Resolution goes
// through Resolve so a resolved ticket always carries resolution text.
func (s *SupportService) UpdateStatus(ctx context.Context, ticketID int, newStatus domain.TicketStatus, adminID int64, note string) error {
	if !newStatus.Valid() {
		return apperrors.NewValidationError("unknown ticket status", map[string]any{"status": newStatus})
	}
	if newStatus == domain.TicketStatusResolved {
		return apperrors.NewValidationError("use resolve to close out a ticket with resolution text", nil)
	}

	s.mu.Lock()
	ticket := s.findLocked(ticketID)
	if ticket == nil {
		s.mu.Unlock()
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	ticket.UpdatedBy = &adminID
	ticket.UpdatedAt = s.now()

	if oldStatus == domain.TicketStatusOpen && newStatus != domain.TicketStatusOpen {
		s.decrementActiveLocked()
	} else if oldStatus != domain.TicketStatusOpen && newStatus == domain.TicketStatusOpen {
		s.tickets.ActiveTickets++
	}
	snapshot := snapshotTicket(ticket)

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticketID,
		Payload: events.TicketStatusChangedPayload{
			Ticket:    snapshot,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Note:      note,
		},
	})
	return nil
}

// EscalateDueTickets promotes open tickets older than maxAge to high
// priority. The escalated flag makes each promotion a one-shot: later scans
// skip the ticket, so admins are alerted at most once per aging event.
func (s *SupportService) EscalateDueTickets(ctx context.Context, now time.Time, maxAge time.Duration) []domain.Ticket {
	s.mu.Lock()
	escalated := []domain.Ticket{}
	for i := range s.tickets.Tickets {
		ticket := &s.tickets.Tickets[i]
		if ticket.Status != domain.TicketStatusOpen || ticket.Escalated {
			continue
		}
		if now.Sub(ticket.CreatedAt) <= maxAge {
			continue
		}
		ticket.Priority = domain.TicketPriorityHigh
		ticket.Escalated = true
		ticket.UpdatedAt = now
		escalated = append(escalated, snapshotTicket(ticket))
	}

	var err error
	if len(escalated) > 0 {
		err = s.persistLocked()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to persist escalations", zap.Error(err))
		return escalated
	}
	for _, ticket := range escalated {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketEscalated,
			TicketID: ticket.ID,
			Payload:  events.TicketEscalatedPayload{Ticket: ticket},
		})
	}
	return escalated
}

// RequestHumanAgent records a human-agent request and alerts admins.
func (s *SupportService) RequestHumanAgent(ctx context.Context, userID int64, username, message string) {
	s.publish(ctx, events.Event{
		Type: events.EventHumanAgentRequested,
		Payload: events.HumanAgentRequestedPayload{
			UserID:   userID,
			Username: username,
			Message:  message,
		},
	})
}

// AutoResponsesEnabled reports the auto-response toggle.
func (s *SupportService) AutoResponsesEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.AutoResponsesEnabled
}

// SetAutoResponses flips the auto-response toggle and persists it.
func (s *SupportService) SetAutoResponses(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.AutoResponsesEnabled = enabled
	if err := s.configs.Save(s.config); err != nil {
		s.logger.Error("failed to persist response config", zap.Error(err))
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Statistics computes the support rollup from the live collection.
func (s *SupportService) Statistics() SupportOverview {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.tickets.Tickets)
	open := 0
	resolved := 0
	var totalResolutionSeconds float64
	for i := range s.tickets.Tickets {
		ticket := &s.tickets.Tickets[i]
		switch ticket.Status {
		case domain.TicketStatusOpen:
			open++
		case domain.TicketStatusResolved:
			resolved++
			if len(ticket.Responses) > 0 {
				totalResolutionSeconds += ticket.UpdatedAt.Sub(ticket.CreatedAt).Seconds()
			}
		}
	}

	avgHours := 0.0
	if resolved > 0 {
		avgHours = totalResolutionSeconds / float64(resolved) / 3600
	}

	return SupportOverview{
		TotalTickets:         total,
		OpenTickets:          open,
		ResolvedTickets:      resolved,
		AvgResolutionHours:   avgHours,
		CategoryStats:        copyCounts(s.stats.CategoryStats),
		DailyTickets:         copyCounts(s.stats.DailyTickets),
		AutoResponsesEnabled: s.config.AutoResponsesEnabled,
	}
}

// ActiveTickets exposes the running open-ticket counter.
func (s *SupportService) ActiveTickets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.ActiveTickets
}

// ResolvedTickets exposes the running resolved-ticket counter.
func (s *SupportService) ResolvedTickets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.ResolvedTickets
}

func (s *SupportService) findLocked(ticketID int) *domain.Ticket {
	for i := range s.tickets.Tickets {
		if s.tickets.Tickets[i].ID == ticketID {
			return &s.tickets.Tickets[i]
		}
	}
	return nil
}

func (s *SupportService) decrementActiveLocked() {
	if s.tickets.ActiveTickets > 0 {
		s.tickets.ActiveTickets--
	}
}

func (s *SupportService) persistLocked() error {
	if err := s.store.Save(s.tickets); err != nil {
		s.logger.Error("failed to persist ticket document", zap.Error(err))
		return apperrors.NewStorageError(err)
	}
	if err := s.statsStore.Save(s.stats); err != nil {
		s.logger.Error("failed to persist stats document", zap.Error(err))
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *SupportService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func snapshotTicket(ticket *domain.Ticket) domain.Ticket {
	copied := *ticket
	copied.Responses = append([]domain.TicketResponse{}, ticket.Responses...)
	return copied
}

func copyCounts(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
