package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/agilept/outcomes/internal/domain/clinician"
	"github.com/agilept/outcomes/internal/domain/patient"
)

type Service struct {
	repo       Repository
	patients   patient.Repository
	clinicians clinician.Repository
	now        func() time.Time
}

// NewService wires the encounter service. now may be nil, in which case the
// wall clock is used; tests inject a fixed clock.
func NewService(repo Repository, patients patient.Repository, clinicians clinician.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, patients: patients, clinicians: clinicians, now: now}
}

// OpenInput carries the caller-entered fields for a new encounter.
type OpenInput struct {
	PatientID   string
	ClinicianID string
	BodyPart    string
	CareType    CareType
	InjuryType  string
}

// Open creates a new encounter dated today. Both referenced ids must
// resolve; a dangling reference is reported at creation time instead of
// surfacing later as a read-time miss.
func (s *Service) Open(ctx context.Context, in OpenInput) (*Encounter, error) {
	if _, err := s.patients.GetByID(ctx, in.PatientID); err != nil {
		return nil, fmt.Errorf("patient %q: %w", in.PatientID, err)
	}
	if _, err := s.clinicians.GetByID(ctx, in.ClinicianID); err != nil {
		return nil, fmt.Errorf("clinician %q: %w", in.ClinicianID, err)
	}

	e := &Encounter{
		PatientID:   in.PatientID,
		ClinicianID: in.ClinicianID,
		BodyPart:    in.BodyPart,
		CareType:    in.CareType,
		InjuryType:  in.InjuryType,
		StartedAt:   truncateToDate(s.now()),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get looks up one encounter by id.
func (s *Service) Get(ctx context.Context, id string) (*Encounter, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the full encounter collection in insertion order.
func (s *Service) List(ctx context.Context) ([]*Encounter, error) {
	return s.repo.List(ctx)
}

// ListByPatient returns the patient's encounters in insertion order.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Encounter, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// truncateToDate drops the time-of-day part; StartedAt is a calendar date.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
