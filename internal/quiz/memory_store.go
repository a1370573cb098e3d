package quiz

import (
	"context"
	"sync"
)

// MemoryStore is the default backend: a process-local table whose lifetime
// bounds the records' lifetime. Request handlers run in parallel, so the
// mutex guards every map access; unguarded mutation would lose updates.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Put(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.QuizID] = record.Clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, quizID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[quizID]
	if !ok {
		return Record{}, ErrQuizNotFound
	}
	return record.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, quizID string, mutate func(*Record) error) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[quizID]
	if !ok {
		return Record{}, ErrQuizNotFound
	}

	updated := record.Clone()
	if err := mutate(&updated); err != nil {
		return Record{}, err
	}
	s.records[quizID] = updated
	return updated.Clone(), nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the number of stored records. Records are never deleted, so
// this only grows within a process lifetime.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
