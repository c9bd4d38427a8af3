package repository

import (
	"path/filepath"

	"github.com/spec-kit/support-bot/internal/domain"
)

// StatsStore persists the support statistics document.
type StatsStore interface {
	Load() (*domain.StatsDocument, error)
	Save(doc *domain.StatsDocument) error
}

type fileStatsStore struct {
	path string
}

// NewStatsStore builds a file-backed stats store.
func NewStatsStore(dataDir string) StatsStore {
	return &fileStatsStore{path: filepath.Join(dataDir, "support_stats.json")}
}

func (s *fileStatsStore) Load() (*domain.StatsDocument, error) {
	doc := &domain.StatsDocument{}
	if err := readDocument(s.path, doc); err != nil {
		if err == errMissing {
			return domain.NewStatsDocument(), nil
		}
		return nil, err
	}
	if doc.DailyTickets == nil {
		doc.DailyTickets = map[string]int{}
	}
	if doc.CategoryStats == nil {
		doc.CategoryStats = map[string]int{}
	}
	return doc, nil
}

func (s *fileStatsStore) Save(doc *domain.StatsDocument) error {
	return writeDocument(s.path, doc)
}
