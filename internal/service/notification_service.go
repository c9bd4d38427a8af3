package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/events"
	"github.com/spec-kit/support-bot/internal/observability"
)

// NotificationService formats ticket notices and hands them to the Messenger.
// Delivery is best-effort: per-recipient failures are logged and never abort
// the originating operation.
type NotificationService struct {
	dispatcher events.Dispatcher
	messenger  Messenger
	adminIDs   []int64
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, messenger Messenger, adminIDs []int64, metrics *observability.Metrics, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		messenger:  messenger,
		adminIDs:   adminIDs,
		metrics:    metrics,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the ticket event stream.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketResponseAdded, n.handleResponseAdded)
	n.dispatcher.Subscribe(events.EventTicketResolved, n.handleTicketResolved)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketEscalated, n.handleTicketEscalated)
	n.dispatcher.Subscribe(events.EventHumanAgentRequested, n.handleHumanAgentRequested)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket

	text := fmt.Sprintf(
		"🚨 New Support Ticket\n\nTicket ID: #%d\nUser: @%s (%d)\nCategory: %s\nStatus: %s\n\nMessage:\n%s\n\nCreated: %s",
		ticket.ID, ticket.Username, ticket.UserID, ticket.Category, titleStatus(ticket.Status),
		preview(ticket.Message, 200), ticket.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	buttons := [][]Button{
		Row(Button{Label: "📋 View Ticket", Data: fmt.Sprintf("admin_view_ticket_%d", ticket.ID)}),
	}
	n.broadcastToAdmins(ctx, "ticket_created", text, buttons)
	return nil
}

func (n *NotificationService) handleResponseAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketResponseAddedPayload)
	if !ok || !payload.Response.IsAdmin {
		return nil
	}
	ticket := payload.Ticket

	text := fmt.Sprintf(
		"📨 Response to Ticket #%d\n\nCategory: %s\n\nAdmin Response:\n%s\n\nStatus: %s\nTime: %s\n\nThank you for your patience!",
		ticket.ID, ticket.Category, payload.Response.Response,
		titleStatus(ticket.Status), payload.Response.Timestamp.Format("2006-01-02 15:04:05"),
	)
	buttons := [][]Button{
		Row(Button{Label: "📋 View Full Ticket", Data: fmt.Sprintf("support_view_ticket_%d", ticket.ID)}),
	}
	n.sendToUser(ctx, "ticket_response", ticket.UserID, text, buttons)
	return nil
}

func (n *NotificationService) handleTicketResolved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketResolvedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket

	resolution := ""
	if ticket.Resolution != nil {
		resolution = *ticket.Resolution
	}
	text := fmt.Sprintf(
		"🎉 Your Issue Has Been Fixed!\n\nTicket ID: #%d\nCategory: %s\n\nResolution:\n%s\n\nStatus: ✅ Resolved\nResolved On: %s\n\nIf you have any other questions, please don't hesitate to create a new ticket.\n\nThank you for contacting us!",
		ticket.ID, ticket.Category, resolution, ticket.UpdatedAt.Format("2006-01-02 15:04:05"),
	)
	buttons := [][]Button{
		Row(Button{Label: "📝 Create New Ticket", Data: "support_create_ticket"}),
		Row(Button{Label: "🆘 Support", Data: "support_menu"}),
		Row(Button{Label: "🏠 Main Menu", Data: "back"}),
	}
	n.sendToUser(ctx, "ticket_resolved", ticket.UserID, text, buttons)
	return nil
}

var statusEmojis = map[domain.TicketStatus]string{
	domain.TicketStatusOpen:       "📝",
	domain.TicketStatusInProgress: "🔄",
	domain.TicketStatusPending:    "⏳",
	domain.TicketStatusResolved:   "✅",
	domain.TicketStatusClosed:     "🔒",
}

func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket

	emoji := statusEmojis[payload.NewStatus]
	if emoji == "" {
		emoji = "📋"
	}
	note := ""
	if payload.Note != "" {
		note = fmt.Sprintf("\nMessage: %s\n", payload.Note)
	}
	text := fmt.Sprintf(
		"%s Ticket Status Update\n\nTicket ID: #%d\nCategory: %s\nNew Status: %s\n%s\nWe're working on resolving your issue as quickly as possible.\n\nThank you for your patience!",
		emoji, ticket.ID, ticket.Category, titleStatus(payload.NewStatus), note,
	)
	buttons := [][]Button{
		Row(Button{Label: "🆘 Support", Data: "support_menu"}),
		Row(Button{Label: "🏠 Main Menu", Data: "back"}),
	}
	n.sendToUser(ctx, "ticket_status", ticket.UserID, text, buttons)
	return nil
}

func (n *NotificationService) handleTicketEscalated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketEscalatedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket

	text := fmt.Sprintf(
		"🚨 TICKET ESCALATED\n\nTicket ID: #%d\nUser: @%s\nCategory: %s\nPriority: HIGH\nAge: 24+ hours\n\nThis ticket needs immediate attention!",
		ticket.ID, ticket.Username, ticket.Category,
	)
	buttons := [][]Button{
		Row(Button{Label: "📋 View Ticket", Data: fmt.Sprintf("admin_view_ticket_%d", ticket.ID)}),
	}
	n.broadcastToAdmins(ctx, "ticket_escalated", text, buttons)
	return nil
}

func (n *NotificationService) handleHumanAgentRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.HumanAgentRequestedPayload)
	if !ok {
		return nil
	}

	text := fmt.Sprintf(
		"👤 HUMAN AGENT REQUEST\n\nUser: @%s (%d)\nMessage: %s\n\nRequest Type: Human Agent Support\nPriority: HIGH\n\nAction Required: User wants to speak with a human agent.\nPlease respond to this user directly.",
		payload.Username, payload.UserID, preview(payload.Message, 200),
	)
	buttons := [][]Button{
		Row(Button{Label: "💬 Respond to User", Data: fmt.Sprintf("admin_respond_user_%d", payload.UserID)}),
		Row(Button{Label: "📋 Create Support Ticket", Data: fmt.Sprintf("admin_create_ticket_%d", payload.UserID)}),
	}
	n.broadcastToAdmins(ctx, "human_agent_requested", text, buttons)
	return nil
}

func (n *NotificationService) broadcastToAdmins(ctx context.Context, kind, text string, buttons [][]Button) {
	for _, adminID := range n.adminIDs {
		n.sendToUser(ctx, kind, adminID, text, buttons)
	}
}

func (n *NotificationService) sendToUser(ctx context.Context, kind string, recipientID int64, text string, buttons [][]Button) {
	err := n.messenger.Send(ctx, recipientID, text, buttons)
	n.metrics.RecordNotification(kind, err == nil)
	if err != nil {
		n.logger.Warn("notification delivery failed",
			zap.String("kind", kind),
			zap.Int64("recipient_id", recipientID),
			zap.Error(err))
	}
}

func titleStatus(status domain.TicketStatus) string {
	words := strings.Split(string(status), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// preview truncates to max characters, never splitting a multi-byte rune;
// Telegram rejects messages that are not valid UTF-8.
func preview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
