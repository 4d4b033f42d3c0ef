package history

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps runs in process memory, in the order recorded.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []Run
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Record(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if run.ID == uuid.Nil {
		return ErrInvalidRun
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// List returns a copy of the recorded runs, oldest first.
func (s *MemoryStore) List() []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	return out
}

func (s *MemoryStore) Close() {}
