package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/you/remindersvc/domain"
)

// APIKeyServiceImpl implements domain.KeyService. Keys are opaque random
// identifiers; they carry no embedded claims and only match a user row.
type APIKeyServiceImpl struct{}

// NewAPIKeyService creates a new API key generator
func NewAPIKeyService() domain.KeyService {
	return &APIKeyServiceImpl{}
}

// NewKey implements domain.KeyService
func (s *APIKeyServiceImpl) NewKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
