package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/service"
)

// cancelWords abort an in-flight conversational flow.
var cancelWords = map[string]bool{
	"cancel": true,
	"stop":   true,
	"exit":   true,
}

// Bot runs the Telegram long-poll loop and routes updates to the support and
// review flows.
type Bot struct {
	api         *tgbotapi.BotAPI
	messenger   service.Messenger
	support     *service.SupportService
	reviews     *service.ReviewService
	classifier  *service.Classifier
	sessions    *SessionStore
	pollTimeout int
	logger      *zap.Logger
}

// Dependencies bundles the bot collaborators.
type Dependencies struct {
	API         *tgbotapi.BotAPI
	Messenger   service.Messenger
	Support     *service.SupportService
	Reviews     *service.ReviewService
	Classifier  *service.Classifier
	PollTimeout int
	Logger      *zap.Logger
}

// New builds the bot.
func New(deps Dependencies) *Bot {
	return &Bot{
		api:         deps.API,
		messenger:   deps.Messenger,
		support:     deps.Support,
		reviews:     deps.Reviews,
		classifier:  deps.Classifier,
		sessions:    NewSessionStore(),
		pollTimeout: deps.PollTimeout,
		logger:      deps.Logger,
	}
}

// Run blocks on the update channel until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("telegram bot started", zap.String("username", b.api.Self.UserName))
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("update handler panicked", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	username := msg.From.UserName
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sessions.Clear(userID)
			b.send(ctx, userID, "👋 Welcome! Use /support for help or /reviews to share feedback.", nil)
		case "support":
			b.sessions.Clear(userID)
			b.showSupportMenu(ctx, userID, 0, 0)
		case "reviews":
			b.sessions.Clear(userID)
			b.showReviewMenu(ctx, userID)
		default:
			b.send(ctx, userID, "Unknown command. Try /support or /reviews.", nil)
		}
		return
	}

	if session, ok := b.sessions.Get(userID); ok {
		if cancelWords[strings.ToLower(text)] {
			b.sessions.Clear(userID)
			b.send(ctx, userID, "❌ Cancelled.", nil)
			return
		}
		switch session.Action {
		case ActionCreatingTicket:
			b.captureTicketMessage(ctx, userID, username, session, text)
			return
		case ActionWritingReview:
			b.captureReviewComment(ctx, userID, username, session, text)
			return
		}
	}

	if service.IsHumanAgentRequest(text) {
		b.handleHumanAgentMessage(ctx, userID, username, text)
		return
	}

	if b.support.AutoResponsesEnabled() {
		if reply, ok := b.classifier.Classify(userID, text); ok {
			b.send(ctx, userID, reply.Text, nil)
			return
		}
	}

	if len(text) > 3 {
		lang := b.classifier.Language(userID)
		b.send(ctx, userID, "🤔 I couldn't find an instant answer to that. Would you like to create a support ticket?",
			[][]service.Button{
				service.Row(service.Button{Label: b.label(lang, "support.menu.create", "📝 Create Ticket"), Data: cbSupportCreate}),
				service.Row(service.Button{Label: "🆘 Support Menu", Data: cbSupportMenu}),
			})
		return
	}

	b.send(ctx, userID, "👋 Hi! Use /support if you need any help.", nil)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger.Debug("callback ack failed", zap.Error(err))
	}
	if cq.Message == nil {
		return
	}

	userID := cq.From.ID
	username := cq.From.UserName
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID
	data := cq.Data

	switch {
	case data == cbSupportMenu:
		b.sessions.Clear(userID)
		b.showSupportMenu(ctx, userID, chatID, messageID)
	case data == cbSupportCreate:
		b.promptCategory(ctx, userID, chatID, messageID)
	case strings.HasPrefix(data, cbSupportCategory):
		b.selectCategory(ctx, userID, chatID, messageID, strings.TrimPrefix(data, cbSupportCategory))
	case data == cbSupportMyTickets:
		b.showMyTickets(ctx, userID, chatID, messageID)
	case data == cbSupportFAQ:
		b.showFAQ(ctx, userID, chatID, messageID)
	case data == cbSupportHumanAgent:
		b.handleHumanAgentMessage(ctx, userID, username, "Requested via support menu")
	case data == cbBack:
		b.sessions.Clear(userID)
		b.edit(ctx, chatID, messageID, "🏠 Main menu. Use /support or /reviews.", nil)

	case data == cbReviewMenu:
		b.sessions.Clear(userID)
		b.showReviewMenu(ctx, userID)
	case data == cbWriteReview:
		b.promptRating(ctx, userID, chatID, messageID)
	case strings.HasPrefix(data, cbRatePrefix):
		b.selectRating(ctx, userID, chatID, messageID, strings.TrimPrefix(data, cbRatePrefix))
	case data == cbMyReviews:
		b.showMyReviews(ctx, userID, chatID, messageID)
	case data == cbTopReviews:
		b.showTopReviews(ctx, chatID, messageID)
	case data == cbReviewStats:
		b.showReviewStats(ctx, chatID, messageID)
	case data == cbCancelReview:
		b.sessions.Clear(userID)
		b.edit(ctx, chatID, messageID, "❌ Review cancelled.", reviewMenuKeyboard())
	}
}

func (b *Bot) send(ctx context.Context, recipientID int64, text string, buttons [][]service.Button) {
	if err := b.messenger.Send(ctx, recipientID, text, buttons); err != nil {
		b.logger.Warn("send failed", zap.Int64("recipient_id", recipientID), zap.Error(err))
	}
}

func (b *Bot) edit(ctx context.Context, chatID int64, messageID int, text string, buttons [][]service.Button) {
	if err := b.messenger.Edit(ctx, chatID, messageID, text, buttons); err != nil {
		b.logger.Warn("edit failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
