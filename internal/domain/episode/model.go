package episode

import (
	"time"

	"github.com/agilept/outcomes/internal/domain/encounter"
)

// Episode is the derived dashboard view of one encounter: the encounter's
// own fields joined with display names and the date-driven metrics. It is
// recomputed on every read and never stored.
type Episode struct {
	ID            string             `json:"id"`
	PatientID     string             `json:"patient_id"`
	PatientName   string             `json:"patient_name"`
	PatientMRN    string             `json:"patient_mrn"`
	ClinicianID   string             `json:"clinician_id"`
	ClinicianName string             `json:"clinician_name"`
	Condition     string             `json:"condition"`
	CareType      encounter.CareType `json:"care_type"`
	InjuryType    string             `json:"injury_type"`

	SetupDate     time.Time  `json:"setup_date"`
	IntakeDate    *time.Time `json:"intake_date,omitempty"`
	StatusDate    *time.Time `json:"status_date,omitempty"`
	EmailSentDate time.Time  `json:"email_sent_date"`

	DaysSinceSetup  int  `json:"days_since_setup"`
	DaysSinceIntake *int `json:"days_since_intake,omitempty"`
	DaysSinceStatus *int `json:"days_since_status,omitempty"`

	Status Status `json:"status"`
}
