package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/service"
)

func (b *Bot) showSupportMenu(ctx context.Context, userID, chatID int64, messageID int) {
	lang := b.classifier.Language(userID)
	open := 0
	for _, ticket := range b.support.TicketsByUser(userID) {
		if ticket.Status == domain.TicketStatusOpen {
			open++
		}
	}

	text := b.label(lang, "support.title", "🆘 Customer Support") + "\n\n" +
		b.label(lang, "support.how_can_help", "How can we help you today?")
	keyboard := b.supportMenuKeyboard(lang, open)

	if chatID != 0 {
		b.edit(ctx, chatID, messageID, text, keyboard)
		return
	}
	b.send(ctx, userID, text, keyboard)
}

func (b *Bot) promptCategory(ctx context.Context, userID, chatID int64, messageID int) {
	lang := b.classifier.Language(userID)
	b.edit(ctx, chatID, messageID, "📝 Create Support Ticket\n\nPlease select a category for your issue:", b.categoryKeyboard(lang))
}

func (b *Bot) selectCategory(ctx context.Context, userID, chatID int64, messageID int, rawIndex string) {
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 || index >= len(domain.SupportCategories) {
		b.edit(ctx, chatID, messageID, "Please pick a category from the list.", b.categoryKeyboard(b.classifier.Language(userID)))
		return
	}
	category := domain.SupportCategories[index]

	b.sessions.Set(userID, Session{
		Action:   ActionCreatingTicket,
		Category: category,
		Step:     "message",
	})
	b.edit(ctx, chatID, messageID,
		fmt.Sprintf("📝 Category: %s\n\nPlease describe your issue in detail. Type 'cancel' to abort.", category), nil)
}

func (b *Bot) captureTicketMessage(ctx context.Context, userID int64, username string, session *Session, text string) {
	ticketID, err := b.support.CreateTicket(ctx, userID, username, session.Category, text)
	if err != nil {
		b.send(ctx, userID, "⚠️ Couldn't create your ticket. Please try again.", nil)
		return
	}
	b.sessions.Clear(userID)

	lang := b.classifier.Language(userID)
	b.send(ctx, userID, fmt.Sprintf(
		"✅ Support Ticket Created!\n\nTicket ID: #%d\nCategory: %s\n\nOur support team will respond as soon as possible. You can check your ticket status anytime from the support menu.",
		ticketID, session.Category), b.backToSupportKeyboard(lang))
}

func (b *Bot) showMyTickets(ctx context.Context, userID, chatID int64, messageID int) {
	lang := b.classifier.Language(userID)
	tickets := b.support.TicketsByUser(userID)
	if len(tickets) == 0 {
		b.edit(ctx, chatID, messageID, "📋 You have no support tickets yet.", b.backToSupportKeyboard(lang))
		return
	}

	// Most recent five.
	if len(tickets) > 5 {
		tickets = tickets[len(tickets)-5:]
	}

	var sb strings.Builder
	sb.WriteString("📋 Your Support Tickets\n")
	for i := len(tickets) - 1; i >= 0; i-- {
		ticket := tickets[i]
		sb.WriteString(fmt.Sprintf(
			"\n#%d • %s\nStatus: %s | Priority: %s\nCreated: %s\n",
			ticket.ID, ticket.Category, ticket.Status, ticket.Priority,
			ticket.CreatedAt.Format("2006-01-02 15:04")))
		if len(ticket.Responses) > 0 {
			sb.WriteString(fmt.Sprintf("Responses: %d\n", len(ticket.Responses)))
		}
	}
	b.edit(ctx, chatID, messageID, sb.String(), b.backToSupportKeyboard(lang))
}

func (b *Bot) showFAQ(ctx context.Context, userID, chatID int64, messageID int) {
	lang := b.classifier.Language(userID)
	text := strings.Join([]string{
		b.label(lang, "support.faq.title", "❓ Frequently Asked Questions"),
		"",
		b.label(lang, "support.faq.q1", ""),
		"",
		b.label(lang, "support.faq.q2", ""),
		"",
		b.label(lang, "support.faq.q3", ""),
		"",
		b.label(lang, "support.faq.q4", ""),
		"",
		b.label(lang, "support.faq.need_more", "Need more help? Create a support ticket!"),
	}, "\n")
	b.edit(ctx, chatID, messageID, text, [][]service.Button{
		service.Row(service.Button{Label: b.label(lang, "support.menu.create", "📝 Create Ticket"), Data: cbSupportCreate}),
		service.Row(service.Button{Label: b.label(lang, "support.menu.back", "🔙 Back"), Data: cbSupportMenu}),
	})
}

func (b *Bot) handleHumanAgentMessage(ctx context.Context, userID int64, username, message string) {
	b.support.RequestHumanAgent(ctx, userID, username, message)

	lang := b.classifier.Language(userID)
	text := strings.Join([]string{
		b.label(lang, "support.agent.request.title", "👤 Human Agent Request Received"),
		"",
		b.label(lang, "support.agent.request.body", "Thank you for your request! I've notified our support team that you'd like to speak with a human agent."),
		"",
		b.label(lang, "support.agent.request.next", "What happens next:\n• Our support team will respond to you directly\n• Response time: usually within 1-2 hours"),
	}, "\n")
	b.send(ctx, userID, text, [][]service.Button{
		service.Row(service.Button{Label: b.label(lang, "support.menu.create", "📝 Create Ticket"), Data: cbSupportCreate}),
		service.Row(service.Button{Label: b.label(lang, "support.menu.back", "🔙 Back"), Data: cbSupportMenu}),
	})
}
