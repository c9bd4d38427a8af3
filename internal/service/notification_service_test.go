package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/observability"
)

type sentMessage struct {
	recipientID int64
	text        string
	buttons     [][]Button
}

type fakeMessenger struct {
	sent    []sentMessage
	failFor map[int64]error
}

func (m *fakeMessenger) Send(_ context.Context, recipientID int64, text string, buttons [][]Button) error {
	if err, ok := m.failFor[recipientID]; ok {
		return err
	}
	m.sent = append(m.sent, sentMessage{recipientID: recipientID, text: text, buttons: buttons})
	return nil
}

func (m *fakeMessenger) Edit(context.Context, int64, int, string, [][]Button) error {
	return nil
}

func (m *fakeMessenger) sentTo(recipientID int64) []sentMessage {
	result := []sentMessage{}
	for _, msg := range m.sent {
		if msg.recipientID == recipientID {
			result = append(result, msg)
		}
	}
	return result
}

func newNotifiedSupport(t *testing.T, messenger *fakeMessenger, adminIDs []int64) *SupportService {
	t.Helper()

	svc, dispatcher := newTestSupport(t)
	notifications := NewNotificationService(dispatcher, messenger, adminIDs, observability.NewMetrics(), zap.NewNop())
	notifications.RegisterHandlers()
	return svc
}

func TestTicketLifecycleNotifications(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := newNotifiedSupport(t, messenger, []int64{7, 8})
	ctx := context.Background()

	id, err := svc.CreateTicket(ctx, 42, "alice", "Payment Problems", "my btc payment failed")
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	for _, adminID := range []int64{7, 8} {
		msgs := messenger.sentTo(adminID)
		if len(msgs) != 1 {
			t.Fatalf("admin %d got %d messages, want 1", adminID, len(msgs))
		}
		if !strings.Contains(msgs[0].text, "New Support Ticket") || !strings.Contains(msgs[0].text, "@alice") {
			t.Fatalf("unexpected admin notice: %q", msgs[0].text)
		}
		if msgs[0].buttons[0][0].Data != "admin_view_ticket_1" {
			t.Fatalf("unexpected button data: %q", msgs[0].buttons[0][0].Data)
		}
	}

	if _, err := svc.AddResponse(ctx, id, 7, "we are checking your payment", true); err != nil {
		t.Fatalf("AddResponse: %v", err)
	}
	if err := svc.Resolve(ctx, id, "refunded", 7); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	userMsgs := messenger.sentTo(42)
	if len(userMsgs) != 2 {
		t.Fatalf("user got %d messages, want 2 (response + resolution)", len(userMsgs))
	}
	if !strings.Contains(userMsgs[0].text, "Response to Ticket #1") {
		t.Fatalf("unexpected response notice: %q", userMsgs[0].text)
	}
	if !strings.Contains(userMsgs[1].text, "Your Issue Has Been Fixed") || !strings.Contains(userMsgs[1].text, "refunded") {
		t.Fatalf("unexpected resolution notice: %q", userMsgs[1].text)
	}
}

func TestUserResponsesDoNotNotify(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := newNotifiedSupport(t, messenger, []int64{7})
	ctx := context.Background()

	id, _ := svc.CreateTicket(ctx, 42, "alice", "Order Issues", "no tracking number yet")
	before := len(messenger.sentTo(42))

	if _, err := svc.AddResponse(ctx, id, 42, "any update please?", false); err != nil {
		t.Fatalf("AddResponse: %v", err)
	}
	if got := len(messenger.sentTo(42)); got != before {
		t.Fatalf("user notified about own response: %d messages", got)
	}
}

func TestEscalationNotifiesAdmins(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := newNotifiedSupport(t, messenger, []int64{7})
	ctx := context.Background()

	svc.RequestHumanAgent(ctx, 42, "alice", "I need to speak with a human")

	msgs := messenger.sentTo(7)
	if len(msgs) != 1 {
		t.Fatalf("admin got %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].text, "HUMAN AGENT REQUEST") {
		t.Fatalf("unexpected notice: %q", msgs[0].text)
	}
	if msgs[0].buttons[0][0].Data != "admin_respond_user_42" {
		t.Fatalf("unexpected button data: %q", msgs[0].buttons[0][0].Data)
	}
}

func TestDeliveryFailureDoesNotAbortOperation(t *testing.T) {
	messenger := &fakeMessenger{failFor: map[int64]error{7: errors.New("blocked")}}
	svc := newNotifiedSupport(t, messenger, []int64{7, 8})
	ctx := context.Background()

	if _, err := svc.CreateTicket(ctx, 42, "alice", "Order Issues", "package missing"); err != nil {
		t.Fatalf("CreateTicket failed on delivery error: %v", err)
	}
	if len(messenger.sentTo(8)) != 1 {
		t.Fatal("remaining admin not notified after one delivery failure")
	}
}

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	cases := []string{
		strings.Repeat("a", 196) + "😀😀😀😀",
		strings.Repeat("আমার অর্ডার কোথায়? ", 30),
		strings.Repeat("x", 300),
	}
	for _, input := range cases {
		got := preview(input, 200)
		if !utf8.ValidString(got) {
			t.Fatalf("preview produced invalid UTF-8 for %q: %q", input[:20], got)
		}
		if utf8.RuneCountInString(got) > 200 {
			t.Fatalf("preview kept %d runes, want at most 200", utf8.RuneCountInString(got))
		}
	}

	if got := preview("short", 200); got != "short" {
		t.Fatalf("preview(%q) = %q, want unchanged", "short", got)
	}
}

func TestLongMultibyteTicketMessageNotifiesValidText(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := newNotifiedSupport(t, messenger, []int64{7})
	ctx := context.Background()

	message := strings.Repeat("পেমেন্ট সমস্যা হয়েছে 😟 ", 40)
	if _, err := svc.CreateTicket(ctx, 42, "rahim", "Payment Problems", message); err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	msgs := messenger.sentTo(7)
	if len(msgs) != 1 {
		t.Fatalf("admin got %d messages, want 1", len(msgs))
	}
	if !utf8.ValidString(msgs[0].text) {
		t.Fatalf("admin notice is not valid UTF-8: %q", msgs[0].text)
	}
}

func TestStatusChangeNotification(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := newNotifiedSupport(t, messenger, nil)
	ctx := context.Background()

	id, _ := svc.CreateTicket(ctx, 42, "alice", "Order Issues", "package missing")
	if err := svc.UpdateStatus(ctx, id, "in_progress", 7, "courier contacted"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	msgs := messenger.sentTo(42)
	if len(msgs) != 1 {
		t.Fatalf("user got %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].text, "🔄") || !strings.Contains(msgs[0].text, "In Progress") {
		t.Fatalf("unexpected status notice: %q", msgs[0].text)
	}
	if !strings.Contains(msgs[0].text, "courier contacted") {
		t.Fatalf("note missing from status notice: %q", msgs[0].text)
	}
}
