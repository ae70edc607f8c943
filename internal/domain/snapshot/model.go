package snapshot

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// scoreScale is the fixed factor applied to the summed response values.
const scoreScale = 10

// Answer is one survey response: a question key and the raw value the view
// layer collected for it.
type Answer struct {
	Question string `json:"question"`
	Value    string `json:"value"`
}

// Responses is an insertion-ordered list of survey answers. A slice rather
// than a map so the order questions were answered in survives.
type Responses []Answer

// Score computes the outcome score: the sum of the numerically coerced
// answer values times the fixed scale. Missing or non-numeric values count
// as zero.
func (r Responses) Score() int {
	var sum float64
	for _, a := range r {
		v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
		if err != nil {
			continue
		}
		sum += v
	}
	return int(math.Round(sum * scoreScale))
}

// Snapshot is a point-in-time outcome survey completion for an encounter.
// Snapshots are add-only; ComputedScore is always derived from Responses
// and never edited independently.
type Snapshot struct {
	ID             string    `json:"id"`
	EncounterID    string    `json:"encounter_id"`
	SurveySchemaID string    `json:"survey_schema_id"`
	Responses      Responses `json:"responses"`
	ComputedScore  int       `json:"computed_score"`
	TakenAt        time.Time `json:"taken_at"`
}
