package encounter

import "time"

// CareType classifies the kind of care an encounter tracks.
type CareType string

const (
	CareOrthopedic  CareType = "ORTHOPEDIC"
	CareNeurologic  CareType = "NEUROLOGIC"
	CarePelvicFloor CareType = "PELVIC_FLOOR"
)

var validCareTypes = map[CareType]bool{
	CareOrthopedic:  true,
	CareNeurologic:  true,
	CarePelvicFloor: true,
}

// ValidCareType reports whether ct is one of the known care types. The
// engine itself stores whatever it is given; this is for callers that want
// to validate input before submitting it.
func ValidCareType(ct CareType) bool {
	return validCareTypes[ct]
}

// Encounter is one tracked injury or care episode for one patient with one
// assigned clinician. Encounters are add-only: never mutated or deleted.
// StartedAt is set at creation to the current date and is not caller
// supplied.
type Encounter struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	ClinicianID string    `json:"clinician_id"`
	BodyPart    string    `json:"body_part"`
	CareType    CareType  `json:"care_type"`
	InjuryType  string    `json:"injury_type"`
	StartedAt   time.Time `json:"started_at"`
}
