package repository

import (
	"path/filepath"

	"github.com/spec-kit/support-bot/internal/domain"
)

// ReviewStore persists the review document.
type ReviewStore interface {
	Load() (*domain.ReviewDocument, error)
	Save(doc *domain.ReviewDocument) error
}

type fileReviewStore struct {
	path string
}

// NewReviewStore builds a file-backed review store.
func NewReviewStore(dataDir string) ReviewStore {
	return &fileReviewStore{path: filepath.Join(dataDir, "reviews.json")}
}

func (s *fileReviewStore) Load() (*domain.ReviewDocument, error) {
	doc := &domain.ReviewDocument{}
	if err := readDocument(s.path, doc); err != nil {
		if err == errMissing {
			return domain.NewReviewDocument(), nil
		}
		return nil, err
	}
	if doc.Reviews == nil {
		doc.Reviews = []domain.Review{}
	}
	if doc.Statistics.RatingDistribution == nil {
		doc.Statistics.RatingDistribution = domain.NewReviewDocument().Statistics.RatingDistribution
	}
	if doc.FeaturedReviews == nil {
		doc.FeaturedReviews = []int{}
	}
	return doc, nil
}

func (s *fileReviewStore) Save(doc *domain.ReviewDocument) error {
	return writeDocument(s.path, doc)
}
