package clinician

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup does not match a clinician. It is a
// normal result variant, not a fault.
var ErrNotFound = errors.New("clinician not found")

type Repository interface {
	Create(ctx context.Context, c *Clinician) error
	GetByID(ctx context.Context, id string) (*Clinician, error)
	List(ctx context.Context) ([]*Clinician, error)
}
