package episode

// Status is the human-facing classification of an open episode.
type Status string

const (
	StatusInProgress    Status = "In Progress"
	StatusIntakeOverdue Status = "Intake Overdue 7+ days"
	StatusStatusOverdue Status = "Status Overdue 14+ days"
	StatusClose         Status = "Close 30-44 days"
	StatusInactive      Status = "Inactive 45+ days"
)

// Classification thresholds, in whole days.
const (
	inactiveAfter      = 45
	closeAfter         = 30
	statusOverdueAfter = 14
	intakeOverdueAfter = 7
)

// AllStatuses lists the five labels in dashboard tile order.
var AllStatuses = []Status{
	StatusInProgress,
	StatusIntakeOverdue,
	StatusStatusOverdue,
	StatusClose,
	StatusInactive,
}

// classify derives the status label. Rules are evaluated in strict priority
// order and the first match wins: age since setup outranks recency of
// snapshot activity, so an old episode reads as inactive even when it was
// updated yesterday.
func classify(daysSinceSetup int, daysSinceStatus, daysSinceIntake *int) Status {
	switch {
	case daysSinceSetup >= inactiveAfter:
		return StatusInactive
	case daysSinceSetup >= closeAfter:
		return StatusClose
	case daysSinceStatus != nil && *daysSinceStatus >= statusOverdueAfter:
		return StatusStatusOverdue
	case daysSinceIntake != nil && *daysSinceIntake >= intakeOverdueAfter:
		return StatusIntakeOverdue
	default:
		return StatusInProgress
	}
}

// StatusCounts tallies episodes per status label. Every episode lands in
// exactly one bucket, so the counts always sum to len(episodes).
func StatusCounts(episodes []Episode) map[Status]int {
	counts := make(map[Status]int, len(AllStatuses))
	for _, s := range AllStatuses {
		counts[s] = 0
	}
	for _, ep := range episodes {
		counts[ep.Status]++
	}
	return counts
}
