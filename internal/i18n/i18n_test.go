package i18n

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en":    "en",
		"EN-us": "en",
		"bn_BD": "bn",
		"":      "en",
		"fr":    "en",
		" BN ":  "bn",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslateKnownKey(t *testing.T) {
	msg, ok := Translate("en", "support.title")
	if !ok || msg == "" {
		t.Fatalf("Translate(en, support.title) = %q, %v", msg, ok)
	}
}

func TestTranslateMissingKeyFallsThrough(t *testing.T) {
	// bn has no refund text; the caller is expected to chain to english.
	if _, ok := Translate("bn", "support.auto.refund"); ok {
		t.Fatal("bn unexpectedly has a refund message")
	}
	if _, ok := Translate("en", "support.auto.refund"); !ok {
		t.Fatal("en missing the refund message")
	}
}

func TestTranslateUnknownLanguage(t *testing.T) {
	if _, ok := Translate("fr", "support.title"); ok {
		t.Fatal("unexpected message for unsupported language")
	}
}

func TestLanguagesIncludesEnglish(t *testing.T) {
	found := false
	for _, lang := range Languages() {
		if lang == "en" {
			found = true
		}
	}
	if !found {
		t.Fatal("Languages() missing en")
	}
}
