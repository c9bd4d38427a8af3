package bot

import (
	"fmt"
	"strconv"

	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/i18n"
	"github.com/spec-kit/support-bot/internal/service"
)

// Callback data prefixes. Categories travel by index so the payload stays
// well under Telegram's 64-byte callback data limit.
const (
	cbSupportMenu       = "support_menu"
	cbSupportCreate     = "support_create_ticket"
	cbSupportCategory   = "support_category_"
	cbSupportMyTickets  = "support_my_tickets"
	cbSupportFAQ        = "support_faq"
	cbSupportHumanAgent = "support_human_agent"
	cbBack              = "back"

	cbReviewMenu   = "review_menu"
	cbWriteReview  = "write_review"
	cbRatePrefix   = "rate_"
	cbMyReviews    = "my_reviews"
	cbTopReviews   = "top_reviews"
	cbReviewStats  = "review_stats"
	cbCancelReview = "cancel_review"
)

// label resolves user-facing text through the same fallback chain as the
// classifier: requested language, then the configured default, then the
// built-in text.
func (b *Bot) label(lang, key, fallback string) string {
	if msg, ok := i18n.Translate(lang, key); ok {
		return msg
	}
	if msg, ok := i18n.Translate(b.classifier.DefaultLanguage(), key); ok {
		return msg
	}
	return fallback
}

func (b *Bot) supportMenuKeyboard(lang string, openTickets int) [][]service.Button {
	return [][]service.Button{
		service.Row(service.Button{Label: b.label(lang, "support.menu.create", "📝 Create Ticket"), Data: cbSupportCreate}),
		service.Row(service.Button{Label: fmt.Sprintf(b.label(lang, "support.menu.my", "📋 My Tickets (%d)"), openTickets), Data: cbSupportMyTickets}),
		service.Row(
			service.Button{Label: b.label(lang, "support.menu.faq", "❓ FAQ"), Data: cbSupportFAQ},
			service.Button{Label: b.label(lang, "support.menu.human", "👤 Human Agent"), Data: cbSupportHumanAgent},
		),
		service.Row(service.Button{Label: b.label(lang, "support.menu.back", "🔙 Back"), Data: cbBack}),
	}
}

func (b *Bot) categoryKeyboard(lang string) [][]service.Button {
	rows := make([][]service.Button, 0, len(domain.SupportCategories)+1)
	for i, category := range domain.SupportCategories {
		rows = append(rows, service.Row(service.Button{
			Label: category,
			Data:  cbSupportCategory + strconv.Itoa(i),
		}))
	}
	rows = append(rows, service.Row(service.Button{Label: b.label(lang, "support.menu.back", "🔙 Back"), Data: cbSupportMenu}))
	return rows
}

func reviewMenuKeyboard() [][]service.Button {
	return [][]service.Button{
		service.Row(service.Button{Label: "⭐ Write a Review", Data: cbWriteReview}),
		service.Row(
			service.Button{Label: "📋 My Reviews", Data: cbMyReviews},
			service.Button{Label: "🏆 Top Reviews", Data: cbTopReviews},
		),
		service.Row(service.Button{Label: "📊 Review Stats", Data: cbReviewStats}),
		service.Row(service.Button{Label: "🔙 Back", Data: cbBack}),
	}
}

func ratingKeyboard() [][]service.Button {
	row := make([]service.Button, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		stars := ""
		for i := 0; i < rating; i++ {
			stars += "⭐"
		}
		row = append(row, service.Button{Label: stars, Data: cbRatePrefix + strconv.Itoa(rating)})
	}
	return [][]service.Button{
		row,
		service.Row(service.Button{Label: "❌ Cancel", Data: cbCancelReview}),
	}
}

func (b *Bot) backToSupportKeyboard(lang string) [][]service.Button {
	return [][]service.Button{
		service.Row(service.Button{Label: b.label(lang, "support.menu.back", "🔙 Back"), Data: cbSupportMenu}),
	}
}
