package service

import (
	"strings"

	"github.com/spec-kit/support-bot/internal/i18n"
	"github.com/spec-kit/support-bot/internal/repository"
)

// AutoReply is a canned response selected by keyword match.
type AutoReply struct {
	Category string
	Text     string
}

// humanAgentPhrases unconditionally suppress auto-responses; a message
// containing any of them takes the human-escalation path instead.
var humanAgentPhrases = []string{
	"human", "agent", "person", "staff", "representative",
	"manager", "supervisor", "live chat", "real person",
	"talk to someone", "speak to", "connect me", "transfer me",
	"ami human er sathe kotha bolte chai", "human agent chai",
	"staff er sathe kotha bolte hobe", "manager er sathe kotha",
}

type autoResponseRule struct {
	category string
	localKey string
	fallback string
	keywords []string
}

// Rule order matters: the first category with a keyword present wins.
var autoResponseRules = []autoResponseRule{
	{
		category: "greeting",
		localKey: "support.auto.greeting",
		fallback: "👋 Hello! Welcome to our support! How can I help you today?",
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "namaste", "salam", "assalamu alaikum", "kemon achen", "ki obostha"},
	},
	{
		category: "order_status",
		localKey: "support.auto.order_status",
		fallback: "📦 To check your order status use the /orders command or create a support ticket.",
		keywords: []string{"order", "status", "tracking", "delivery", "shipped", "where is my order", "order kothay", "delivery kobe hobe", "tracking number"},
	},
	{
		category: "payment_help",
		localKey: "support.auto.payment_help",
		fallback: "💳 We accept Bitcoin (BTC) and Monero (XMR). Send the exact amount shown at checkout.",
		keywords: []string{"payment", "pay", "crypto", "bitcoin", "xmr", "wallet", "how to pay", "payment kivabe korbo", "bitcoin address", "monero address", "payment method"},
	},
	{
		category: "product_info",
		localKey: "support.auto.product_info",
		fallback: "🛍️ Browse products from the main menu, or create a support ticket for specific questions.",
		keywords: []string{"product", "price", "stock", "available", "quantity", "product list", "ki ki ache", "price koto", "stock ache ki", "product details"},
	},
	{
		category: "shipping_delivery",
		localKey: "support.auto.shipping",
		fallback: "🚚 Delivery: EU 3-7 days, USA 5-10 days, worldwide 7-14 days.",
		keywords: []string{"shipping", "delivery", "how long", "delivery time", "shipping cost", "delivery kobe hobe", "shipping koto taka", "delivery time koto"},
	},
	{
		category: "refund_return",
		localKey: "support.auto.refund",
		fallback: "💰 Contact support within 7 days for refunds; processing takes 3-5 business days.",
		keywords: []string{"refund", "return", "money back", "refund chai", "return korbo", "money back chai"},
	},
	{
		category: "technical_issues",
		localKey: "support.auto.technical",
		fallback: "🔧 Try restarting your session; if the problem persists, create a support ticket.",
		keywords: []string{"error", "bug", "not working", "problem", "issue", "broken"},
	},
	{
		category: "general_help",
		localKey: "support.auto.general",
		fallback: "❓ Use /start for the main menu or /support for help options.",
		keywords: []string{"help", "how", "what", "where", "when"},
	},
}

// IsHumanAgentRequest reports whether the text asks for a human agent.
func IsHumanAgentRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range humanAgentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Classifier maps free-form inbound text to canned responses. It is a pure
// function of the text, the rule table, and the (optional) user language.
type Classifier struct {
	users       repository.UserDirectory
	defaultLang string
}

// NewClassifier builds a classifier. users may be nil; language resolution
// then always falls back to defaultLang.
func NewClassifier(users repository.UserDirectory, defaultLang string) *Classifier {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &Classifier{users: users, defaultLang: defaultLang}
}

// Classify returns the auto-reply for text, or false when no rule matches or
// the text requests a human agent (the escalation path).
func (c *Classifier) Classify(userID int64, text string) (*AutoReply, bool) {
	if IsHumanAgentRequest(text) {
		return nil, false
	}

	lower := strings.ToLower(text)
	for _, rule := range autoResponseRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return &AutoReply{
					Category: rule.category,
					Text:     c.responseText(userID, rule),
				}, true
			}
		}
	}
	return nil, false
}

// DefaultLanguage returns the configured fallback language.
func (c *Classifier) DefaultLanguage() string {
	return c.defaultLang
}

// Language resolves the display language for a user, falling back to the
// default on any lookup failure.
func (c *Classifier) Language(userID int64) string {
	if c.users != nil {
		if profile, ok := c.users.Find(userID); ok {
			return i18n.Normalize(profile.Language)
		}
	}
	return c.defaultLang
}

func (c *Classifier) responseText(userID int64, rule autoResponseRule) string {
	if msg, ok := i18n.Translate(c.Language(userID), rule.localKey); ok {
		return msg
	}
	if msg, ok := i18n.Translate(c.defaultLang, rule.localKey); ok {
		return msg
	}
	return rule.fallback
}
