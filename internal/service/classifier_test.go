package service

import (
	"strings"
	"testing"

	"github.com/spec-kit/support-bot/internal/domain"
)

type staticUsers struct {
	profiles map[int64]*domain.UserProfile
}

func (s *staticUsers) Find(userID int64) (*domain.UserProfile, bool) {
	profile, ok := s.profiles[userID]
	return profile, ok
}

func TestClassifyMatchesPaymentKeywords(t *testing.T) {
	c := NewClassifier(nil, "en")

	reply, ok := c.Classify(1, "what is your bitcoin address?")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply.Category != "payment_help" {
		t.Fatalf("category = %s, want payment_help", reply.Category)
	}
	if reply.Text == "" {
		t.Fatal("reply text empty")
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier(nil, "en")

	// "hello" (greeting) appears before "order" in the rule table.
	reply, ok := c.Classify(1, "hello, where is my order?")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply.Category != "greeting" {
		t.Fatalf("category = %s, want greeting", reply.Category)
	}
}

func TestClassifySkipsHumanAgentRequests(t *testing.T) {
	for _, text := range []string{
		"I want to talk to someone",
		"connect me with a real person",
		"ami human er sathe kotha bolte chai",
	} {
		if !IsHumanAgentRequest(text) {
			t.Fatalf("IsHumanAgentRequest(%q) = false, want true", text)
		}
		if _, ok := NewClassifier(nil, "en").Classify(1, text); ok {
			t.Fatalf("Classify(%q) matched, want escalation path", text)
		}
	}
}

func TestClassifyNoMatch(t *testing.T) {
	c := NewClassifier(nil, "en")
	if _, ok := c.Classify(1, "xyzzy"); ok {
		t.Fatal("expected no match for nonsense text")
	}
}

func TestClassifierUsesUserLanguage(t *testing.T) {
	users := &staticUsers{profiles: map[int64]*domain.UserProfile{
		5: {UserID: 5, Username: "rahim", Language: "bn"},
	}}
	c := NewClassifier(users, "en")

	if lang := c.Language(5); lang != "bn" {
		t.Fatalf("language = %s, want bn", lang)
	}
	if lang := c.Language(99); lang != "en" {
		t.Fatalf("language fallback = %s, want en", lang)
	}

	reply, ok := c.Classify(5, "order kothay")
	if !ok {
		t.Fatal("expected a match")
	}
	if !strings.Contains(reply.Text, "/orders") {
		t.Fatalf("unexpected reply text: %q", reply.Text)
	}
}

func TestClassifierFallsBackToEnglishForMissingKeys(t *testing.T) {
	users := &staticUsers{profiles: map[int64]*domain.UserProfile{
		5: {UserID: 5, Username: "rahim", Language: "bn"},
	}}
	c := NewClassifier(users, "en")

	// The bn table has no refund message, so the english one is used.
	reply, ok := c.Classify(5, "refund chai")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply.Category != "refund_return" {
		t.Fatalf("category = %s, want refund_return", reply.Category)
	}
	if !strings.Contains(reply.Text, "Refund") {
		t.Fatalf("expected english fallback, got %q", reply.Text)
	}
}
