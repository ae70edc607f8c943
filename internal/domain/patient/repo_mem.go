package patient

import (
	"context"
	"sync"

	"github.com/agilept/outcomes/internal/platform/idgen"
)

type repoMem struct {
	mu    sync.RWMutex
	ids   *idgen.Generator
	items []*Patient
	byID  map[string]*Patient
}

// NewRepo returns the in-memory patient repository.
func NewRepo(ids *idgen.Generator) Repository {
	return &repoMem{
		ids:  ids,
		byID: make(map[string]*Patient),
	}
}

func (r *repoMem) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = r.ids.Patient()
	}
	stored := *p
	r.items = append(r.items, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *repoMem) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Patient, len(r.items))
	for i, p := range r.items {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}
