package viewstate

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned by a Store when the key has never been written.
	ErrNotFound = errors.New("viewstate: key not found")
	// ErrUnavailable is returned by collaborators the host cannot provide,
	// such as disabled storage or an unsupported media query.
	ErrUnavailable = errors.New("viewstate: unavailable")
)

// Store is a key-value slot with get/set semantics and no transactions.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
