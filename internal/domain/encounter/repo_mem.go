package encounter

import (
	"context"
	"sync"

	"github.com/agilept/outcomes/internal/platform/idgen"
)

type repoMem struct {
	mu    sync.RWMutex
	ids   *idgen.Generator
	items []*Encounter
	byID  map[string]*Encounter
}

// NewRepo returns the in-memory encounter repository. Foreign keys are
// stored as given; resolution happens at read time.
func NewRepo(ids *idgen.Generator) Repository {
	return &repoMem{
		ids:  ids,
		byID: make(map[string]*Encounter),
	}
}

func (r *repoMem) Create(_ context.Context, e *Encounter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = r.ids.Encounter()
	}
	stored := *e
	r.items = append(r.items, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id string) (*Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *e
	return &out, nil
}

func (r *repoMem) List(_ context.Context) ([]*Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(*Encounter) bool { return true }), nil
}

func (r *repoMem) ListByPatient(_ context.Context, patientID string) ([]*Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(e *Encounter) bool { return e.PatientID == patientID }), nil
}

func (r *repoMem) ListByClinician(_ context.Context, clinicianID string) ([]*Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(e *Encounter) bool { return e.ClinicianID == clinicianID }), nil
}

// filter copies matching encounters in insertion order. Callers must hold
// at least a read lock.
func (r *repoMem) filter(keep func(*Encounter) bool) []*Encounter {
	out := make([]*Encounter, 0, len(r.items))
	for _, e := range r.items {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}
