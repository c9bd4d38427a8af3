package repository

import (
	"path/filepath"

	"github.com/spec-kit/support-bot/internal/domain"
)

// ResponseStore persists the response/config document.
type ResponseStore interface {
	Load() (*domain.ResponseConfigDocument, error)
	Save(doc *domain.ResponseConfigDocument) error
}

type fileResponseStore struct {
	path string
}

// NewResponseStore builds a file-backed response config store.
func NewResponseStore(dataDir string) ResponseStore {
	return &fileResponseStore{path: filepath.Join(dataDir, "support_responses.json")}
}

func (s *fileResponseStore) Load() (*domain.ResponseConfigDocument, error) {
	doc := &domain.ResponseConfigDocument{}
	if err := readDocument(s.path, doc); err != nil {
		if err == errMissing {
			return domain.NewResponseConfigDocument(), nil
		}
		return nil, err
	}
	if doc.ResponseTemplates == nil {
		doc.ResponseTemplates = domain.NewResponseConfigDocument().ResponseTemplates
	}
	return doc, nil
}

func (s *fileResponseStore) Save(doc *domain.ResponseConfigDocument) error {
	return writeDocument(s.path, doc)
}
