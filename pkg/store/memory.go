package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
)

// MemoryStore keeps profiles in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	now      func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]Profile), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, p Profile) (Profile, error) {
	p, err := prepare(p, s.now())
	if err != nil {
		return Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
	return p, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Profile, error) {
	if err := errors.ValidateProfileID(id); err != nil {
		return Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return Profile{}, notFound(id)
	}
	return p, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Profile, error) {
	s.mu.RLock()
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateProfileID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return notFound(id)
	}
	delete(s.profiles, id)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
