package password

import (
	"sync"

	"github.com/kbukum/restkit/auth"
	apperrors "github.com/kbukum/restkit/errors"
)

var _ auth.CredentialVerifier = (*Store)(nil)

// Store is an in-memory username to password-hash table.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	hasher Hasher
	hashes map[string]string
}

// NewStore creates an empty store that hashes with hasher.
func NewStore(hasher Hasher) *Store {
	return &Store{hasher: hasher, hashes: make(map[string]string)}
}

// Add hashes password and stores it for username, replacing any previous entry.
func (s *Store) Add(username, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	s.AddHash(username, hash)
	return nil
}

// AddHash stores an already hashed password.
func (s *Store) AddHash(username, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[username] = hash
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hashes)
}

// VerifyCredentials returns an Unauthorized AppError unless username exists
// and password matches its hash. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *Store) VerifyCredentials(username, password string) error {
	s.mu.RLock()
	hash, ok := s.hashes[username]
	s.mu.RUnlock()
	if !ok {
		return apperrors.Unauthorized("invalid username or password")
	}
	if err := s.hasher.Verify(password, hash); err != nil {
		return apperrors.Unauthorized("invalid username or password").WithCause(err)
	}
	return nil
}
