// Package i18n provides flat key-based message lookup for user-facing text.
// Lookups are best-effort: callers chain Translate(userLang) → Translate(defaultLang)
// → a built-in default string.
package i18n

import "strings"

// Normalize canonicalizes a language code ("EN-us" → "en"). Unknown or empty
// codes normalize to "en".
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	if _, ok := messages[code]; !ok {
		return "en"
	}
	return code
}

// Translate returns the message for key in the given language. The second
// return value reports whether the key exists for that language.
func Translate(lang, key string) (string, bool) {
	table, ok := messages[lang]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	return msg, ok
}

// Languages lists the language codes with message tables.
func Languages() []string {
	langs := make([]string, 0, len(messages))
	for code := range messages {
		langs = append(langs, code)
	}
	return langs
}
