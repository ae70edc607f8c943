// Package sandbox populates the in-memory repositories with demo data: the
// fixed baseline dataset the console starts from, plus optional synthetic
// volume for exercising the dashboard at scale. Generation is reproducible
// for a given seed.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/agilept/outcomes/internal/domain/clinician"
	"github.com/agilept/outcomes/internal/domain/encounter"
	"github.com/agilept/outcomes/internal/domain/patient"
	"github.com/agilept/outcomes/internal/domain/snapshot"
)

// SeedConfig controls the volume of generated synthetic data on top of the
// baseline dataset.
type SeedConfig struct {
	PatientCount          int   `json:"patientCount"`
	EncountersPerPatient  int   `json:"encountersPerPatient"`
	SnapshotsPerEncounter int   `json:"snapshotsPerEncounter"`
	Seed                  int64 `json:"seed"`
}

// DefaultSeedConfig returns a SeedConfig that adds no synthetic volume;
// the baseline dataset alone is enough for a demo.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		PatientCount:          0,
		EncountersPerPatient:  2,
		SnapshotsPerEncounter: 1,
		Seed:                  1,
	}
}

// Seeder writes demo data through the repositories.
type Seeder struct {
	patients   patient.Repository
	clinicians clinician.Repository
	encounters encounter.Repository
	snapshots  snapshot.Repository
	log        zerolog.Logger
	now        func() time.Time
}

// NewSeeder wires a Seeder. now may be nil, in which case the wall clock
// is used.
func NewSeeder(
	patients patient.Repository,
	clinicians clinician.Repository,
	encounters encounter.Repository,
	snapshots snapshot.Repository,
	log zerolog.Logger,
	now func() time.Time,
) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		patients:   patients,
		clinicians: clinicians,
		encounters: encounters,
		snapshots:  snapshots,
		log:        log,
		now:        now,
	}
}

// SeedBaseline loads the fixed demo dataset. Encounter start dates and
// snapshot times are backdated relative to the current clock so each
// dashboard status tile has something to show.
func (s *Seeder) SeedBaseline(ctx context.Context) error {
	now := s.now()
	dob1 := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	dob2 := time.Date(1987, 5, 20, 0, 0, 0, 0, time.UTC)

	clinicians := []*clinician.Clinician{
		{ID: "c1", FirstName: "Alex", LastName: "Nguyen"},
		{ID: "c2", FirstName: "Jamie", LastName: "Rivera"},
	}
	for _, c := range clinicians {
		if err := s.clinicians.Create(ctx, c); err != nil {
			return fmt.Errorf("seed clinician %s: %w", c.ID, err)
		}
	}

	patients := []*patient.Patient{
		{ID: "p1", MRN: "10001", FirstName: "Taylor", LastName: "Morgan", PreferredName: "Tay", Sex: patient.SexFemale, Language: "English", DateOfBirth: &dob1},
		{ID: "p2", MRN: "10002", FirstName: "Jordan", LastName: "Lee", PreferredName: "J", Sex: patient.SexMale, Language: "Spanish", DateOfBirth: &dob2},
	}
	for _, p := range patients {
		if err := s.patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %s: %w", p.ID, err)
		}
	}

	encounters := []*encounter.Encounter{
		{ID: "e1", PatientID: "p1", ClinicianID: "c1", BodyPart: "knee", CareType: encounter.CareOrthopedic, InjuryType: "ACL sprain", StartedAt: daysAgo(now, 46)},
		{ID: "e2", PatientID: "p1", ClinicianID: "c2", BodyPart: "shoulder", CareType: encounter.CareOrthopedic, InjuryType: "Rotator cuff", StartedAt: daysAgo(now, 33)},
		{ID: "e3", PatientID: "p2", ClinicianID: "c1", BodyPart: "back", CareType: encounter.CareNeurologic, InjuryType: "Sciatica", StartedAt: daysAgo(now, 12)},
		{ID: "e4", PatientID: "p2", ClinicianID: "c2", BodyPart: "neck", CareType: encounter.CareOrthopedic, InjuryType: "Whiplash", StartedAt: daysAgo(now, 20)},
		{ID: "e5", PatientID: "p1", ClinicianID: "c1", BodyPart: "hip", CareType: encounter.CareOrthopedic, InjuryType: "Labral tear", StartedAt: daysAgo(now, 25)},
	}
	for _, e := range encounters {
		if err := s.encounters.Create(ctx, e); err != nil {
			return fmt.Errorf("seed encounter %s: %w", e.ID, err)
		}
	}

	snaps := []*snapshot.Snapshot{
		{ID: "s1", EncounterID: "e1", SurveySchemaID: "lefs", Responses: snapshot.Responses{{Question: "q1", Value: "3"}, {Question: "q2", Value: "4"}}, TakenAt: now.AddDate(0, 0, -20)},
		{ID: "s2", EncounterID: "e1", SurveySchemaID: "lefs", Responses: snapshot.Responses{{Question: "q1", Value: "4"}, {Question: "q2", Value: "4"}}, TakenAt: now.AddDate(0, 0, -16)},
		{ID: "s3", EncounterID: "e4", SurveySchemaID: "lefs", Responses: snapshot.Responses{{Question: "q1", Value: "2"}, {Question: "q2", Value: "3"}}, TakenAt: now.AddDate(0, 0, -9)},
		{ID: "s4", EncounterID: "e5", SurveySchemaID: "lefs", Responses: snapshot.Responses{{Question: "q1", Value: "2"}, {Question: "q2", Value: "2"}}, TakenAt: now.AddDate(0, 0, -22)},
		{ID: "s5", EncounterID: "e5", SurveySchemaID: "lefs", Responses: snapshot.Responses{{Question: "q1", Value: "3"}, {Question: "q2", Value: "3"}}, TakenAt: now.AddDate(0, 0, -15)},
	}
	for _, sn := range snaps {
		sn.ComputedScore = sn.Responses.Score()
		if err := s.snapshots.Create(ctx, sn); err != nil {
			return fmt.Errorf("seed snapshot %s: %w", sn.ID, err)
		}
	}

	s.log.Info().
		Int("clinicians", len(clinicians)).
		Int("patients", len(patients)).
		Int("encounters", len(encounters)).
		Int("snapshots", len(snaps)).
		Msg("baseline dataset seeded")
	return nil
}

var (
	firstNames = []string{"Riley", "Casey", "Quinn", "Avery", "Rowan", "Sage", "Emerson", "Finley", "Harper", "Dakota"}
	lastNames  = []string{"Brooks", "Hayes", "Sullivan", "Parker", "Reed", "Bennett", "Foster", "Coleman", "Murphy", "Ortiz"}
	bodyParts  = []string{"knee", "shoulder", "back", "hip", "ankle", "wrist", "neck", "elbow"}
	injuries   = []string{"Sprain", "Strain", "Post-op rehab", "Tendinopathy", "Chronic pain"}
	careTypes  = []encounter.CareType{encounter.CareOrthopedic, encounter.CareNeurologic, encounter.CarePelvicFloor}
	languages  = []string{"English", "Spanish", "Mandarin", "Vietnamese"}
	sexes      = []patient.Sex{patient.SexFemale, patient.SexMale, patient.SexOther, patient.SexUnknown}
)

// SeedSynthetic adds cfg.PatientCount generated patients with encounters
// and snapshots. The same cfg.Seed always produces the same dataset shape.
func (s *Seeder) SeedSynthetic(ctx context.Context, cfg SeedConfig) error {
	if cfg.PatientCount <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	now := s.now()

	clinicians, err := s.clinicians.List(ctx)
	if err != nil {
		return fmt.Errorf("list clinicians: %w", err)
	}
	if len(clinicians) == 0 {
		return fmt.Errorf("seed synthetic: no clinicians to assign")
	}

	encounters, snaps := 0, 0
	for i := 0; i < cfg.PatientCount; i++ {
		dob := time.Date(1950+rng.Intn(60), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		p := &patient.Patient{
			MRN:         fmt.Sprintf("%05d", 20000+rng.Intn(60000)),
			FirstName:   firstNames[rng.Intn(len(firstNames))],
			LastName:    lastNames[rng.Intn(len(lastNames))],
			Sex:         sexes[rng.Intn(len(sexes))],
			Language:    languages[rng.Intn(len(languages))],
			DateOfBirth: &dob,
		}
		if err := s.patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed synthetic patient: %w", err)
		}

		for j := 0; j < cfg.EncountersPerPatient; j++ {
			e := &encounter.Encounter{
				PatientID:   p.ID,
				ClinicianID: clinicians[rng.Intn(len(clinicians))].ID,
				BodyPart:    bodyParts[rng.Intn(len(bodyParts))],
				CareType:    careTypes[rng.Intn(len(careTypes))],
				InjuryType:  injuries[rng.Intn(len(injuries))],
				StartedAt:   daysAgo(now, rng.Intn(60)),
			}
			if err := s.encounters.Create(ctx, e); err != nil {
				return fmt.Errorf("seed synthetic encounter: %w", err)
			}
			encounters++

			for k := 0; k < cfg.SnapshotsPerEncounter; k++ {
				resp := snapshot.Responses{
					{Question: "q1", Value: fmt.Sprintf("%d", rng.Intn(6))},
					{Question: "q2", Value: fmt.Sprintf("%d", rng.Intn(6))},
				}
				sn := &snapshot.Snapshot{
					EncounterID:    e.ID,
					SurveySchemaID: "lefs",
					Responses:      resp,
					ComputedScore:  resp.Score(),
					TakenAt:        now.AddDate(0, 0, -rng.Intn(30)),
				}
				if err := s.snapshots.Create(ctx, sn); err != nil {
					return fmt.Errorf("seed synthetic snapshot: %w", err)
				}
				snaps++
			}
		}
	}

	s.log.Info().
		Int("patients", cfg.PatientCount).
		Int("encounters", encounters).
		Int("snapshots", snaps).
		Int64("seed", cfg.Seed).
		Msg("synthetic dataset seeded")
	return nil
}

// daysAgo returns the calendar date n whole days before now.
func daysAgo(now time.Time, n int) time.Time {
	y, m, d := now.UTC().AddDate(0, 0, -n).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
