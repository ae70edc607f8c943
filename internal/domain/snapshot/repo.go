package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup does not match a snapshot. It is a
// normal result variant, not a fault.
var ErrNotFound = errors.New("snapshot not found")

type Repository interface {
	Create(ctx context.Context, s *Snapshot) error
	GetByID(ctx context.Context, id string) (*Snapshot, error)
	List(ctx context.Context) ([]*Snapshot, error)
	ListByEncounter(ctx context.Context, encounterID string) ([]*Snapshot, error)
}
