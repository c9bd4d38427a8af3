package bot

import (
	"testing"

	"github.com/spec-kit/support-bot/internal/service"
)

func TestLabelFallsBackToConfiguredDefault(t *testing.T) {
	b := &Bot{classifier: service.NewClassifier(nil, "bn")}

	// Unknown language resolves through the configured default, not english.
	got := b.label("fr", "support.menu.faq", "fallback")
	if got != "❓ সাধারণ প্রশ্ন" {
		t.Fatalf("label = %q, want bengali faq label", got)
	}

	// Key missing from the default language table falls to the built-in text,
	// matching the classifier's chain.
	got = b.label("fr", "support.faq.q1", "built-in")
	if got != "built-in" {
		t.Fatalf("label = %q, want built-in fallback", got)
	}
}

func TestLabelPrefersRequestedLanguage(t *testing.T) {
	b := &Bot{classifier: service.NewClassifier(nil, "bn")}

	if got := b.label("en", "support.menu.create", "fallback"); got != "📝 Create Ticket" {
		t.Fatalf("label = %q, want english create label", got)
	}
}

func TestSupportMenuKeyboardUsesDefaultLanguage(t *testing.T) {
	b := &Bot{classifier: service.NewClassifier(nil, "bn")}

	rows := b.supportMenuKeyboard("bn", 2)
	if rows[0][0].Label != "📝 টিকিট তৈরি করুন" {
		t.Fatalf("create button = %q, want bengali label", rows[0][0].Label)
	}
	if rows[0][0].Data != cbSupportCreate {
		t.Fatalf("create button data = %q", rows[0][0].Data)
	}
}
