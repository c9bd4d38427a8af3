package repository

import (
	"path/filepath"

	"github.com/spec-kit/support-bot/internal/domain"
)

// TicketStore persists the ticket document.
type TicketStore interface {
	Load() (*domain.TicketDocument, error)
	Save(doc *domain.TicketDocument) error
}

type fileTicketStore struct {
	path string
}

// NewTicketStore builds a file-backed ticket store rooted at dataDir.
func NewTicketStore(dataDir string) TicketStore {
	return &fileTicketStore{path: filepath.Join(dataDir, "support_tickets.json")}
}

func (s *fileTicketStore) Load() (*domain.TicketDocument, error) {
	doc := domain.NewTicketDocument()
	if err := readDocument(s.path, doc); err != nil {
		if err == errMissing {
			return domain.NewTicketDocument(), nil
		}
		return nil, err
	}
	if doc.Tickets == nil {
		doc.Tickets = []domain.Ticket{}
	}
	if doc.NextTicketID < 1 {
		doc.NextTicketID = 1
	}
	return doc, nil
}

func (s *fileTicketStore) Save(doc *domain.TicketDocument) error {
	return writeDocument(s.path, doc)
}
