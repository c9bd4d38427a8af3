package service

import "context"

// Button is a quick-action inline button attached to an outbound message.
type Button struct {
	Label string
	Data  string
}

// Row builds a single keyboard row.
func Row(buttons ...Button) []Button {
	return buttons
}

// Messenger is the chat transport collaborator. Delivery is best-effort:
// callers log failures and continue.
type Messenger interface {
	Send(ctx context.Context, recipientID int64, text string, buttons [][]Button) error
	Edit(ctx context.Context, chatID int64, messageID int, text string, buttons [][]Button) error
}
