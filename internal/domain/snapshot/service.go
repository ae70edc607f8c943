package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/agilept/outcomes/internal/domain/encounter"
)

type Service struct {
	repo       Repository
	encounters encounter.Repository
	now        func() time.Time
}

// NewService wires the snapshot service. now may be nil, in which case the
// wall clock is used.
func NewService(repo Repository, encounters encounter.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, encounters: encounters, now: now}
}

// RecordInput carries the caller-entered fields for a new snapshot.
type RecordInput struct {
	EncounterID    string
	SurveySchemaID string
	Responses      Responses
}

// Record stores a new snapshot with its derived score and the current
// instant as TakenAt. The referenced encounter must resolve.
func (s *Service) Record(ctx context.Context, in RecordInput) (*Snapshot, error) {
	if _, err := s.encounters.GetByID(ctx, in.EncounterID); err != nil {
		return nil, fmt.Errorf("encounter %q: %w", in.EncounterID, err)
	}

	snap := &Snapshot{
		EncounterID:    in.EncounterID,
		SurveySchemaID: in.SurveySchemaID,
		Responses:      in.Responses,
		ComputedScore:  in.Responses.Score(),
		TakenAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Get looks up one snapshot by id.
func (s *Service) Get(ctx context.Context, id string) (*Snapshot, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByEncounter returns the encounter's snapshots in insertion order.
func (s *Service) ListByEncounter(ctx context.Context, encounterID string) ([]*Snapshot, error) {
	return s.repo.ListByEncounter(ctx, encounterID)
}
