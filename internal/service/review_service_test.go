package service

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/events"
	"github.com/spec-kit/support-bot/internal/repository"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

func newTestReviews(t *testing.T) *ReviewService {
	t.Helper()

	svc, err := NewReviewService(repository.NewReviewStore(t.TempDir()), events.NewInMemoryDispatcher(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewReviewService: %v", err)
	}
	return svc
}

func TestAddReviewUpdatesAggregates(t *testing.T) {
	svc := newTestReviews(t)
	ctx := context.Background()

	orderID := "ord-1001"
	id, err := svc.AddReview(ctx, 42, "alice", 5, "fast shipping, exactly as described", &orderID)
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if id != 1 {
		t.Fatalf("review id = %d, want 1", id)
	}
	if _, err := svc.AddReview(ctx, 43, "bob", 4, "good product overall", nil); err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	stats, verified := svc.Statistics()
	if stats.TotalReviews != 2 {
		t.Fatalf("total reviews = %d, want 2", stats.TotalReviews)
	}
	if stats.AverageRating != 4.5 {
		t.Fatalf("average rating = %v, want 4.5", stats.AverageRating)
	}
	if stats.RatingDistribution["5"] != 1 || stats.RatingDistribution["4"] != 1 {
		t.Fatalf("distribution = %v", stats.RatingDistribution)
	}
	if verified != 1 {
		t.Fatalf("verified reviews = %d, want 1", verified)
	}
}

func TestAddReviewValidation(t *testing.T) {
	svc := newTestReviews(t)
	ctx := context.Background()

	if _, err := svc.AddReview(ctx, 42, "alice", 6, "long enough comment", nil); !apperrors.IsValidation(err) {
		t.Fatalf("rating out of range: got %v", err)
	}
	if _, err := svc.AddReview(ctx, 42, "alice", 5, "short", nil); !apperrors.IsValidation(err) {
		t.Fatalf("short comment: got %v", err)
	}

	stats, _ := svc.Statistics()
	if stats.TotalReviews != 0 {
		t.Fatalf("rejected reviews counted: %d", stats.TotalReviews)
	}
}

func TestFeaturedReviewsCapped(t *testing.T) {
	svc := newTestReviews(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		comment := fmt.Sprintf("excellent quality, would buy again %d", i)
		if _, err := svc.AddReview(ctx, int64(i+1), fmt.Sprintf("user%d", i), 5, comment, nil); err != nil {
			t.Fatalf("AddReview %d: %v", i, err)
		}
	}
	// Low rating and short comments never feature.
	if _, err := svc.AddReview(ctx, 99, "grump", 2, "not great at all honestly", nil); err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	featured := svc.FeaturedReviews()
	if len(featured) != 5 {
		t.Fatalf("featured = %d, want 5", len(featured))
	}
	for _, review := range featured {
		if review.Rating < 4 {
			t.Fatalf("low-rated review featured: %+v", review)
		}
	}
}

func TestDeleteReviewReversesStats(t *testing.T) {
	svc := newTestReviews(t)
	ctx := context.Background()

	orderID := "ord-7"
	id, err := svc.AddReview(ctx, 42, "alice", 5, "fantastic product, highly recommended", &orderID)
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if _, err := svc.AddReview(ctx, 43, "bob", 3, "it's okay I suppose", nil); err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	if err := svc.DeleteReview(id); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}

	stats, verified := svc.Statistics()
	if stats.TotalReviews != 1 {
		t.Fatalf("total reviews = %d, want 1", stats.TotalReviews)
	}
	if stats.AverageRating != 3.0 {
		t.Fatalf("average rating = %v, want 3.0", stats.AverageRating)
	}
	if verified != 0 {
		t.Fatalf("verified reviews = %d, want 0", verified)
	}
	if len(svc.FeaturedReviews()) != 0 {
		t.Fatal("deleted review still featured")
	}

	if err := svc.DeleteReview(id); !apperrors.IsNotFound(err) {
		t.Fatalf("second delete: got %v, want not found", err)
	}
}

func TestUserReviews(t *testing.T) {
	svc := newTestReviews(t)
	ctx := context.Background()

	_, _ = svc.AddReview(ctx, 42, "alice", 5, "fantastic, would recommend", nil)
	_, _ = svc.AddReview(ctx, 43, "bob", 4, "pretty decent overall", nil)
	_, _ = svc.AddReview(ctx, 42, "alice", 3, "second order was slower", nil)

	mine := svc.UserReviews(42)
	if len(mine) != 2 {
		t.Fatalf("user reviews = %d, want 2", len(mine))
	}
	if mine[0].ID >= mine[1].ID {
		t.Fatalf("reviews out of order: %d then %d", mine[0].ID, mine[1].ID)
	}
}

func TestReviewsPersistAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store := repository.NewReviewStore(dir)

	first, err := NewReviewService(store, events.NewInMemoryDispatcher(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewReviewService: %v", err)
	}
	id, err := first.AddReview(ctx, 42, "alice", 5, "arrived quickly and well packed", nil)
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	second, err := NewReviewService(repository.NewReviewStore(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewReviewService reload: %v", err)
	}
	review, err := second.ReviewByID(id)
	if err != nil {
		t.Fatalf("ReviewByID after reload: %v", err)
	}
	if review.Username != "alice" || review.Rating != 5 {
		t.Fatalf("reloaded review = %+v", review)
	}
}
