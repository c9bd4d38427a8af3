package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spec-kit/support-bot/internal/service"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

func (b *Bot) showReviewMenu(ctx context.Context, userID int64) {
	stats, _ := b.reviews.Statistics()
	text := fmt.Sprintf(
		"⭐ Product Reviews\n\nAverage rating: %.1f/5 from %d reviews.\n\nWhat would you like to do?",
		stats.AverageRating, stats.TotalReviews)
	b.send(ctx, userID, text, reviewMenuKeyboard())
}

func (b *Bot) promptRating(ctx context.Context, userID, chatID int64, messageID int) {
	b.sessions.Set(userID, Session{Action: ActionWritingReview, Step: "rating"})
	b.edit(ctx, chatID, messageID, "⭐ Write a Review\n\nHow would you rate your experience?", ratingKeyboard())
}

func (b *Bot) selectRating(ctx context.Context, userID, chatID int64, messageID int, rawRating string) {
	rating, err := strconv.Atoi(rawRating)
	if err != nil || rating < 1 || rating > 5 {
		b.edit(ctx, chatID, messageID, "Please pick a rating between 1 and 5 stars.", ratingKeyboard())
		return
	}

	b.sessions.Set(userID, Session{Action: ActionWritingReview, Step: "comment", Rating: rating})
	b.edit(ctx, chatID, messageID, fmt.Sprintf(
		"You rated %d/5 ⭐\n\nNow write a short comment about your experience (at least 10 characters). Type 'cancel' to abort.",
		rating), nil)
}

func (b *Bot) captureReviewComment(ctx context.Context, userID int64, username string, session *Session, text string) {
	if session.Step != "comment" || session.Rating == 0 {
		b.sessions.Clear(userID)
		b.send(ctx, userID, "Please start your review again from the review menu.", reviewMenuKeyboard())
		return
	}

	reviewID, err := b.reviews.AddReview(ctx, userID, username, session.Rating, text, nil)
	if err != nil {
		if apperrors.IsValidation(err) {
			b.send(ctx, userID, "✏️ Your comment is a bit short. Please write at least 10 characters.", nil)
			return
		}
		b.send(ctx, userID, "⚠️ Couldn't save your review. Please try again.", nil)
		return
	}
	b.sessions.Clear(userID)

	b.send(ctx, userID, fmt.Sprintf(
		"🎉 Thank you for your review!\n\nReview #%d saved with a %d/5 rating.",
		reviewID, session.Rating), reviewMenuKeyboard())
}

func (b *Bot) showMyReviews(ctx context.Context, userID, chatID int64, messageID int) {
	reviews := b.reviews.UserReviews(userID)
	if len(reviews) == 0 {
		b.edit(ctx, chatID, messageID, "📋 You haven't written any reviews yet.", reviewMenuKeyboard())
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Your Reviews\n")
	for _, review := range reviews {
		sb.WriteString(fmt.Sprintf(
			"\n#%d • %d/5 ⭐ • %s\n%s\n",
			review.ID, review.Rating, review.Date.Format("2006-01-02"), review.Comment))
	}
	b.edit(ctx, chatID, messageID, sb.String(), reviewMenuKeyboard())
}

func (b *Bot) showTopReviews(ctx context.Context, chatID int64, messageID int) {
	featured := b.reviews.FeaturedReviews()
	if len(featured) == 0 {
		b.edit(ctx, chatID, messageID, "🏆 No featured reviews yet. Be the first to write one!", reviewMenuKeyboard())
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top Reviews\n")
	for _, review := range featured {
		verified := ""
		if review.VerifiedPurchase {
			verified = " ✅ verified"
		}
		sb.WriteString(fmt.Sprintf(
			"\n%d/5 ⭐ by @%s%s\n%s\n",
			review.Rating, review.Username, verified, review.Comment))
	}
	b.edit(ctx, chatID, messageID, sb.String(), reviewMenuKeyboard())
}

func (b *Bot) showReviewStats(ctx context.Context, chatID int64, messageID int) {
	stats, verified := b.reviews.Statistics()

	var sb strings.Builder
	sb.WriteString("📊 Review Statistics\n\n")
	sb.WriteString(fmt.Sprintf("Total reviews: %d\n", stats.TotalReviews))
	sb.WriteString(fmt.Sprintf("Average rating: %.1f/5\n", stats.AverageRating))
	sb.WriteString(fmt.Sprintf("Verified purchases: %d\n\n", verified))
	for rating := 5; rating >= 1; rating-- {
		count := stats.RatingDistribution[strconv.Itoa(rating)]
		sb.WriteString(fmt.Sprintf("%d⭐: %d\n", rating, count))
	}

	b.edit(ctx, chatID, messageID, sb.String(), [][]service.Button{
		service.Row(service.Button{Label: "🔙 Back", Data: cbReviewMenu}),
	})
}
