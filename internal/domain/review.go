package domain

import "time"

// Review is a user-submitted product/shop review.
type Review struct {
	ID               int       `json:"id"`
	UserID           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	OrderID          *string   `json:"order_id"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	Date             time.Time `json:"date"`
	Likes            int       `json:"likes"`
	HelpfulCount     int       `json:"helpful_count"`
}

// ReviewStatistics aggregates rating counts.
type ReviewStatistics struct {
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// ReviewDocument is the persisted review collection.
type ReviewDocument struct {
	Reviews         []Review         `json:"reviews"`
	Statistics      ReviewStatistics `json:"statistics"`
	VerifiedReviews int              `json:"verified_reviews"`
	FeaturedReviews []int            `json:"featured_reviews"`
}

// NewReviewDocument seeds an empty review collection.
func NewReviewDocument() *ReviewDocument {
	return &ReviewDocument{
		Reviews: []Review{},
		Statistics: ReviewStatistics{
			AverageRating: 5.0,
			RatingDistribution: map[string]int{
				"5": 0, "4": 0, "3": 0, "2": 0, "1": 0,
			},
		},
		FeaturedReviews: []int{},
	}
}
