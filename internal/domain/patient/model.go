package patient

import "time"

// Sex is the administrative sex recorded at registration.
type Sex string

const (
	SexFemale  Sex = "F"
	SexMale    Sex = "M"
	SexOther   Sex = "X"
	SexUnknown Sex = "U"
)

// ParseSex maps free input onto the enum; anything unrecognized is
// recorded as unknown rather than rejected.
func ParseSex(s string) Sex {
	switch Sex(s) {
	case SexFemale, SexMale, SexOther:
		return Sex(s)
	default:
		return SexUnknown
	}
}

// Patient is a tracked patient. Patients are add-only: once registered
// they are never mutated or deleted. MRN is an opaque external identifier
// and is not enforced unique here.
type Patient struct {
	ID            string     `json:"id"`
	MRN           string     `json:"mrn"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	PreferredName string     `json:"preferred_name,omitempty"`
	Sex           Sex        `json:"sex"`
	Language      string     `json:"language,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
}

// DisplayName returns the "Last, First" form used in dashboard columns.
func (p *Patient) DisplayName() string {
	return p.LastName + ", " + p.FirstName
}
