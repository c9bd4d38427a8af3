package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spec-kit/support-bot/internal/domain"
)

func TestTicketStoreSeedsMissingFile(t *testing.T) {
	store := NewTicketStore(t.TempDir())

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.NextTicketID != 1 {
		t.Fatalf("next ticket id = %d, want 1", doc.NextTicketID)
	}
	if doc.Tickets == nil || len(doc.Tickets) != 0 {
		t.Fatalf("tickets = %v, want empty slice", doc.Tickets)
	}
}

func TestTicketStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewTicketStore(dir)

	doc := domain.NewTicketDocument()
	resolution := "refunded"
	doc.Tickets = append(doc.Tickets, domain.Ticket{
		ID:         1,
		UserID:     42,
		Username:   "alice",
		Category:   "Payment Problems",
		Message:    "my btc payment failed",
		Status:     domain.TicketStatusResolved,
		Priority:   domain.TicketPriorityHigh,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC),
		Responses:  []domain.TicketResponse{{ID: 1, ResponderID: 7, Response: "refund issued", IsAdmin: true}},
		Resolution: &resolution,
		Escalated:  true,
	})
	doc.NextTicketID = 2
	doc.ResolvedTickets = 1

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := NewTicketStore(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Tickets) != 1 {
		t.Fatalf("tickets = %d, want 1", len(loaded.Tickets))
	}
	ticket := loaded.Tickets[0]
	if ticket.Username != "alice" || !ticket.Escalated || ticket.Priority != domain.TicketPriorityHigh {
		t.Fatalf("loaded ticket = %+v", ticket)
	}
	if ticket.Resolution == nil || *ticket.Resolution != "refunded" {
		t.Fatalf("resolution = %v", ticket.Resolution)
	}
	if loaded.NextTicketID != 2 || loaded.ResolvedTickets != 1 {
		t.Fatalf("counters = next:%d resolved:%d", loaded.NextTicketID, loaded.ResolvedTickets)
	}
}

func TestTicketStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewTicketStore(dir)

	if err := store.Save(domain.NewTicketDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "support_tickets.json")); err != nil {
		t.Fatalf("expected document file: %v", err)
	}
}

func TestTicketStoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "support_tickets.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, err := NewTicketStore(dir).Load(); err == nil {
		t.Fatal("expected error for corrupt document")
	}
}

func TestReviewStoreSeedsStatistics(t *testing.T) {
	store := NewReviewStore(t.TempDir())

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Statistics.AverageRating != 5.0 {
		t.Fatalf("average rating = %v, want 5.0", doc.Statistics.AverageRating)
	}
	for _, rating := range []string{"1", "2", "3", "4", "5"} {
		if _, ok := doc.Statistics.RatingDistribution[rating]; !ok {
			t.Fatalf("distribution missing bucket %s", rating)
		}
	}
}

func TestResponseStoreDefaultsTemplates(t *testing.T) {
	store := NewResponseStore(t.TempDir())

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !doc.AutoResponsesEnabled {
		t.Fatal("auto responses should default to enabled")
	}
	for _, key := range []string{"greeting", "closing", "escalation"} {
		if doc.ResponseTemplates[key] == "" {
			t.Fatalf("missing default template %q", key)
		}
	}
}

func TestUserDirectoryMissingFile(t *testing.T) {
	users := NewUserDirectory(t.TempDir())
	if _, ok := users.Find(42); ok {
		t.Fatal("expected no profile from empty directory")
	}
}
