package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup does not match a patient. It is a
// normal result variant, not a fault.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
}
