package episode

import "strings"

// Filter narrows the episode list. Criteria compose with logical AND; zero
// values match everything.
type Filter struct {
	// ClinicianID matches exactly against the episode's assigned
	// clinician. Empty means all clinicians.
	ClinicianID string
	// Search is a case-insensitive substring matched against the patient
	// display name, the MRN, and the condition text.
	Search string
}

// Match reports whether ep passes the filter.
func (f Filter) Match(ep Episode) bool {
	if f.ClinicianID != "" && ep.ClinicianID != f.ClinicianID {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(ep.PatientName), term) &&
			!strings.Contains(strings.ToLower(ep.PatientMRN), term) &&
			!strings.Contains(strings.ToLower(ep.Condition), term) {
			return false
		}
	}
	return true
}

// Apply returns the episodes passing the filter, preserving order.
func (f Filter) Apply(episodes []Episode) []Episode {
	if f.ClinicianID == "" && f.Search == "" {
		return episodes
	}
	out := make([]Episode, 0, len(episodes))
	for _, ep := range episodes {
		if f.Match(ep) {
			out = append(out, ep)
		}
	}
	return out
}
