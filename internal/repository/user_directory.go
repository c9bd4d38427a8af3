package repository

import (
	"path/filepath"

	"github.com/spec-kit/support-bot/internal/domain"
)

// UserDirectory resolves storefront user profiles. It is an optional,
// best-effort dependency: a missing file or unreadable document reports
// not-found rather than an error, and callers fall back to the default
// language.
type UserDirectory interface {
	Find(userID int64) (*domain.UserProfile, bool)
}

type fileUserDirectory struct {
	path string
}

// NewUserDirectory builds a read-only directory over the user profile file
// owned by the storefront subsystem.
func NewUserDirectory(dataDir string) UserDirectory {
	return &fileUserDirectory{path: filepath.Join(dataDir, "users.json")}
}

func (d *fileUserDirectory) Find(userID int64) (*domain.UserProfile, bool) {
	doc := &domain.UserDocument{}
	if err := readDocument(d.path, doc); err != nil {
		return nil, false
	}
	for i := range doc.Users {
		if doc.Users[i].UserID == userID {
			return &doc.Users[i], true
		}
	}
	return nil, false
}
