package snapshot

import (
	"context"
	"sync"

	"github.com/agilept/outcomes/internal/platform/idgen"
)

type repoMem struct {
	mu    sync.RWMutex
	ids   *idgen.Generator
	items []*Snapshot
	byID  map[string]*Snapshot
}

// NewRepo returns the in-memory snapshot repository.
func NewRepo(ids *idgen.Generator) Repository {
	return &repoMem{
		ids:  ids,
		byID: make(map[string]*Snapshot),
	}
}

func (r *repoMem) Create(_ context.Context, s *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = r.ids.Snapshot()
	}
	stored := clone(s)
	r.items = append(r.items, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s), nil
}

func (r *repoMem) List(_ context.Context) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Snapshot, len(r.items))
	for i, s := range r.items {
		out[i] = clone(s)
	}
	return out, nil
}

func (r *repoMem) ListByEncounter(_ context.Context, encounterID string) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Snapshot, 0, len(r.items))
	for _, s := range r.items {
		if s.EncounterID == encounterID {
			out = append(out, clone(s))
		}
	}
	return out, nil
}

// clone copies a snapshot including its responses slice so callers cannot
// reach back into stored state.
func clone(s *Snapshot) *Snapshot {
	cp := *s
	cp.Responses = make(Responses, len(s.Responses))
	copy(cp.Responses, s.Responses)
	return &cp
}
