package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/studydrop/studydrop-be/types"
)

// DocumentStore holds extracted document text in memory for the lifetime of
// the process. Entries are written once at upload time and never mutated,
// so a single RWMutex around insertion and lookup is all the locking needed.
// The store is deliberately unbounded; it resets on restart.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]string),
	}
}

// Put stores text under a fresh identifier and returns it. Identifiers are
// never reused.
func (s *DocumentStore) Put(text string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.docs[id] = text
	s.mu.Unlock()
	return id
}

// Get returns the text stored under id. It fails with ErrDocumentNotFound
// when the id was never issued or holds no text.
func (s *DocumentStore) Get(id string) (string, error) {
	s.mu.RLock()
	text := s.docs[id]
	s.mu.RUnlock()
	if text == "" {
		return "", types.ErrDocumentNotFound
	}
	return text, nil
}

// Len reports the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
