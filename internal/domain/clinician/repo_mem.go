package clinician

import (
	"context"
	"sync"

	"github.com/agilept/outcomes/internal/platform/idgen"
)

type repoMem struct {
	mu    sync.RWMutex
	ids   *idgen.Generator
	items []*Clinician
	byID  map[string]*Clinician
}

// NewRepo returns the in-memory clinician repository. All state lives for
// the remainder of the process and is mutated only through Create.
func NewRepo(ids *idgen.Generator) Repository {
	return &repoMem{
		ids:  ids,
		byID: make(map[string]*Clinician),
	}
}

func (r *repoMem) Create(_ context.Context, c *Clinician) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = r.ids.Clinician()
	}
	stored := *c
	r.items = append(r.items, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id string) (*Clinician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *repoMem) List(_ context.Context) ([]*Clinician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Clinician, len(r.items))
	for i, c := range r.items {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}
