package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/domain"
	"github.com/spec-kit/support-bot/internal/events"
	"github.com/spec-kit/support-bot/internal/repository"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

const (
	minReviewLength   = 10
	featuredMinRating = 4
	featuredMinLength = 20
	maxFeatured       = 5
)

// ReviewService owns the review collection and its aggregate statistics.
type ReviewService struct {
	mu         sync.Mutex
	doc        *domain.ReviewDocument
	store      repository.ReviewStore
	dispatcher events.Dispatcher
	logger     *zap.Logger

	now func() time.Time
}

// NewReviewService loads the persisted review document.
func NewReviewService(store repository.ReviewStore, dispatcher events.Dispatcher, logger *zap.Logger) (*ReviewService, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &ReviewService{
		doc:        doc,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// AddReview records a review and updates the rating aggregates. Reviews with
// an order id count as verified purchases; high-rated detailed reviews are
// featured while slots remain.
func (s *ReviewService) AddReview(ctx context.Context, userID int64, username string, rating int, comment string, orderID *string) (int, error) {
	if rating < 1 || rating > 5 {
		return 0, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}
	if len(strings.TrimSpace(comment)) < minReviewLength {
		return 0, apperrors.NewValidationError("review comment too short", map[string]any{"min_length": minReviewLength})
	}

	s.mu.Lock()
	review := domain.Review{
		ID:               s.nextIDLocked(),
		UserID:           userID,
		Username:         username,
		Rating:           rating,
		Comment:          comment,
		OrderID:          orderID,
		VerifiedPurchase: orderID != nil,
		Date:             s.now(),
	}

	s.doc.Reviews = append(s.doc.Reviews, review)
	s.doc.Statistics.TotalReviews++
	s.doc.Statistics.RatingDistribution[strconv.Itoa(rating)]++
	s.recalculateAverageLocked()

	if review.VerifiedPurchase {
		s.doc.VerifiedReviews++
	}
	if rating >= featuredMinRating && len(comment) > featuredMinLength && len(s.doc.FeaturedReviews) < maxFeatured {
		s.doc.FeaturedReviews = append(s.doc.FeaturedReviews, review.ID)
	}

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventReviewSubmitted,
		Payload: events.ReviewSubmittedPayload{Review: review},
	})
	return review.ID, nil
}

// UserReviews returns all reviews by a user in submission order.
func (s *ReviewService) UserReviews(userID int64) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []domain.Review{}
	for _, review := range s.doc.Reviews {
		if review.UserID == userID {
			result = append(result, review)
		}
	}
	return result
}

// AllReviews returns every review in submission order.
func (s *ReviewService) AllReviews() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Review{}, s.doc.Reviews...)
}

// ReviewByID fetches a single review.
func (s *ReviewService) ReviewByID(reviewID int) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, review := range s.doc.Reviews {
		if review.ID == reviewID {
			return review, nil
		}
	}
	return domain.Review{}, apperrors.NewNotFound("review", map[string]any{"review_id": reviewID})
}

// DeleteReview removes a review and reverses its statistics contributions.
func (s *ReviewService) DeleteReview(reviewID int) error {
	s.mu.Lock()
	idx := -1
	for i, review := range s.doc.Reviews {
		if review.ID == reviewID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.NewNotFound("review", map[string]any{"review_id": reviewID})
	}

	review := s.doc.Reviews[idx]
	s.doc.Reviews = append(s.doc.Reviews[:idx], s.doc.Reviews[idx+1:]...)
	s.doc.Statistics.TotalReviews--
	s.doc.Statistics.RatingDistribution[strconv.Itoa(review.Rating)]--
	s.recalculateAverageLocked()

	if review.VerifiedPurchase {
		s.doc.VerifiedReviews--
	}
	for i, id := range s.doc.FeaturedReviews {
		if id == reviewID {
			s.doc.FeaturedReviews = append(s.doc.FeaturedReviews[:i], s.doc.FeaturedReviews[i+1:]...)
			break
		}
	}

	err := s.persistLocked()
	s.mu.Unlock()
	return err
}

// FeaturedReviews resolves the featured id list to review records.
func (s *ReviewService) FeaturedReviews() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []domain.Review{}
	for _, id := range s.doc.FeaturedReviews {
		for _, review := range s.doc.Reviews {
			if review.ID == id {
				result = append(result, review)
				break
			}
		}
	}
	return result
}

// Statistics returns the current aggregates.
func (s *ReviewService) Statistics() (domain.ReviewStatistics, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.doc.Statistics
	stats.RatingDistribution = copyCounts(s.doc.Statistics.RatingDistribution)
	return stats, s.doc.VerifiedReviews
}

func (s *ReviewService) nextIDLocked() int {
	next := 1
	for _, review := range s.doc.Reviews {
		if review.ID >= next {
			next = review.ID + 1
		}
	}
	return next
}

func (s *ReviewService) recalculateAverageLocked() {
	totalRatings := 0
	totalReviews := 0
	for rating, count := range s.doc.Statistics.RatingDistribution {
		value, err := strconv.Atoi(rating)
		if err != nil {
			continue
		}
		totalRatings += value * count
		totalReviews += count
	}
	if totalReviews == 0 {
		s.doc.Statistics.AverageRating = 5.0
		return
	}
	s.doc.Statistics.AverageRating = math.Round(float64(totalRatings)/float64(totalReviews)*10) / 10
}

func (s *ReviewService) persistLocked() error {
	if err := s.store.Save(s.doc); err != nil {
		s.logger.Error("failed to persist review document", zap.Error(err))
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *ReviewService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
