package episode

import (
	"context"
	"time"

	"github.com/agilept/outcomes/internal/domain/clinician"
	"github.com/agilept/outcomes/internal/domain/encounter"
	"github.com/agilept/outcomes/internal/domain/patient"
	"github.com/agilept/outcomes/internal/domain/snapshot"
)

// ErrNotFound is returned when no encounter backs the requested episode.
var ErrNotFound = encounter.ErrNotFound

// emailOffsetDays is the simulated follow-up email date offset. No mail
// subsystem exists; the date is a placeholder column.
const emailOffsetDays = 30

type Service struct {
	encounters encounter.Repository
	patients   patient.Repository
	clinicians clinician.Repository
	snapshots  snapshot.Repository
	now        func() time.Time
}

// NewService wires the episode engine over the four repositories. now may
// be nil, in which case the wall clock is used.
func NewService(
	encounters encounter.Repository,
	patients patient.Repository,
	clinicians clinician.Repository,
	snapshots snapshot.Repository,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		encounters: encounters,
		patients:   patients,
		clinicians: clinicians,
		snapshots:  snapshots,
		now:        now,
	}
}

// Episodes derives the dashboard view for every encounter, in encounter
// insertion order. An encounter whose patient or clinician does not resolve
// still appears, with empty display fields; the miss surfaces through the
// detail lookups instead.
func (s *Service) Episodes(ctx context.Context) ([]Episode, error) {
	encs, err := s.encounters.List(ctx)
	if err != nil {
		return nil, err
	}

	episodes := make([]Episode, 0, len(encs))
	for _, enc := range encs {
		ep, err := s.derive(ctx, enc)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// Episode derives the dashboard view for a single encounter.
func (s *Service) Episode(ctx context.Context, encounterID string) (Episode, error) {
	enc, err := s.encounters.GetByID(ctx, encounterID)
	if err != nil {
		return Episode{}, err
	}
	return s.derive(ctx, enc)
}

func (s *Service) derive(ctx context.Context, enc *encounter.Encounter) (Episode, error) {
	now := s.now()

	ep := Episode{
		ID:            enc.ID,
		PatientID:     enc.PatientID,
		ClinicianID:   enc.ClinicianID,
		Condition:     enc.BodyPart,
		CareType:      enc.CareType,
		InjuryType:    enc.InjuryType,
		SetupDate:     enc.StartedAt,
		EmailSentDate: enc.StartedAt.AddDate(0, 0, emailOffsetDays),
	}

	if p, err := s.patients.GetByID(ctx, enc.PatientID); err == nil {
		ep.PatientName = p.DisplayName()
		ep.PatientMRN = p.MRN
	}
	if c, err := s.clinicians.GetByID(ctx, enc.ClinicianID); err == nil {
		ep.ClinicianName = c.DisplayName()
	}

	snaps, err := s.snapshots.ListByEncounter(ctx, enc.ID)
	if err != nil {
		return Episode{}, err
	}
	if len(snaps) > 0 {
		earliest, latest := snaps[0].TakenAt, snaps[0].TakenAt
		for _, snap := range snaps[1:] {
			if snap.TakenAt.Before(earliest) {
				earliest = snap.TakenAt
			}
			if snap.TakenAt.After(latest) {
				latest = snap.TakenAt
			}
		}
		ep.IntakeDate = &earliest
		intakeDays := wholeDays(now, earliest)
		ep.DaysSinceIntake = &intakeDays

		// The status date only exists once a follow-up snapshot has
		// been taken on top of the intake one.
		if len(snaps) > 1 {
			ep.StatusDate = &latest
			statusDays := wholeDays(now, latest)
			ep.DaysSinceStatus = &statusDays
		}
	}

	ep.DaysSinceSetup = wholeDays(now, enc.StartedAt)
	ep.Status = classify(ep.DaysSinceSetup, ep.DaysSinceStatus, ep.DaysSinceIntake)
	return ep, nil
}

// wholeDays returns the count of complete days between now and then.
func wholeDays(now, then time.Time) int {
	return int(now.Sub(then) / (24 * time.Hour))
}
