package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/spec-kit/support-bot/internal/service"
)

// TelegramMessenger adapts the Telegram Bot API to the service Messenger
// collaborator.
type TelegramMessenger struct {
	api *tgbotapi.BotAPI
}

// NewTelegramMessenger wraps an authorized bot API client.
func NewTelegramMessenger(api *tgbotapi.BotAPI) *TelegramMessenger {
	return &TelegramMessenger{api: api}
}

// Send delivers a message with an optional inline keyboard.
func (m *TelegramMessenger) Send(ctx context.Context, recipientID int64, text string, buttons [][]service.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(recipientID, text)
	if markup, ok := toKeyboard(buttons); ok {
		msg.ReplyMarkup = markup
	}
	_, err := m.api.Send(msg)
	return err
}

// Edit replaces the text and keyboard of an existing message.
func (m *TelegramMessenger) Edit(ctx context.Context, chatID int64, messageID int, text string, buttons [][]service.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if markup, ok := toKeyboard(buttons); ok {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
		_, err := m.api.Send(edit)
		return err
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	_, err := m.api.Send(edit)
	return err
}

func toKeyboard(buttons [][]service.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(buttons) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		if len(row) == 0 {
			continue
		}
		cells := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			cells = append(cells, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Data))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
