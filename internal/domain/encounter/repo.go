package encounter

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup does not match an encounter. It is
// a normal result variant, not a fault.
var ErrNotFound = errors.New("encounter not found")

type Repository interface {
	Create(ctx context.Context, e *Encounter) error
	GetByID(ctx context.Context, id string) (*Encounter, error)
	List(ctx context.Context) ([]*Encounter, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Encounter, error)
	ListByClinician(ctx context.Context, clinicianID string) ([]*Encounter, error)
}
