// Package reporting evaluates a fixed set of measures over the outcomes
// collections: population counts, encounter volume, and the open-episode
// status distribution backing the dashboard tiles.
package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/agilept/outcomes/internal/domain/encounter"
	"github.com/agilept/outcomes/internal/domain/episode"
	"github.com/agilept/outcomes/internal/domain/patient"
	"github.com/agilept/outcomes/internal/domain/snapshot"
)

// ErrUnknownMeasure is returned for a measure id not in PredefinedMeasures.
var ErrUnknownMeasure = errors.New("unknown measure")

// MeasureDefinition describes one reporting measure.
type MeasureDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MeasureReport holds the results of evaluating a measure.
type MeasureReport struct {
	MeasureID   string                   `json:"measure_id"`
	MeasureName string                   `json:"measure_name"`
	GeneratedAt time.Time                `json:"generated_at"`
	Results     []map[string]interface{} `json:"results"`
}

// PredefinedMeasures is the list of available reporting measures.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "patient-count",
		Name:        "Patient Count",
		Description: "Total number of patients in the system",
	},
	{
		ID:          "encounter-volume-by-care-type",
		Name:        "Encounter Volume by Care Type",
		Description: "Number of encounters grouped by care type",
	},
	{
		ID:          "open-episode-status",
		Name:        "Open Episode Status",
		Description: "Open episodes per dashboard status label",
	},
	{
		ID:          "outcome-score-trend",
		Name:        "Outcome Score Trend",
		Description: "First versus latest computed score per encounter with follow-up snapshots",
	},
}

// Reporter evaluates measures against the live repositories.
type Reporter struct {
	patients   patient.Repository
	encounters encounter.Repository
	snapshots  snapshot.Repository
	episodes   *episode.Service
	now        func() time.Time
}

// NewReporter wires a Reporter. now may be nil, in which case the wall
// clock is used.
func NewReporter(
	patients patient.Repository,
	encounters encounter.Repository,
	snapshots snapshot.Repository,
	episodes *episode.Service,
	now func() time.Time,
) *Reporter {
	if now == nil {
		now = time.Now
	}
	return &Reporter{
		patients:   patients,
		encounters: encounters,
		snapshots:  snapshots,
		episodes:   episodes,
		now:        now,
	}
}

// Evaluate runs one measure by id.
func (r *Reporter) Evaluate(ctx context.Context, measureID string) (*MeasureReport, error) {
	var def *MeasureDefinition
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == measureID {
			def = &PredefinedMeasures[i]
			break
		}
	}
	if def == nil {
		return nil, ErrUnknownMeasure
	}

	var (
		results []map[string]interface{}
		err     error
	)
	switch def.ID {
	case "patient-count":
		results, err = r.patientCount(ctx)
	case "encounter-volume-by-care-type":
		results, err = r.encounterVolume(ctx)
	case "open-episode-status":
		results, err = r.episodeStatus(ctx)
	case "outcome-score-trend":
		results, err = r.scoreTrend(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &MeasureReport{
		MeasureID:   def.ID,
		MeasureName: def.Name,
		GeneratedAt: r.now(),
		Results:     results,
	}, nil
}

func (r *Reporter) patientCount(ctx context.Context) ([]map[string]interface{}, error) {
	ps, err := r.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	return []map[string]interface{}{{"total": len(ps)}}, nil
}

func (r *Reporter) encounterVolume(ctx context.Context) ([]map[string]interface{}, error) {
	encs, err := r.encounters.List(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[encounter.CareType]int)
	for _, e := range encs {
		byType[e.CareType]++
	}

	results := make([]map[string]interface{}, 0, len(byType))
	for ct, n := range byType {
		results = append(results, map[string]interface{}{"care_type": string(ct), "total": n})
	}
	sort.Slice(results, func(i, j int) bool {
		ti, tj := results[i]["total"].(int), results[j]["total"].(int)
		if ti != tj {
			return ti > tj
		}
		return results[i]["care_type"].(string) < results[j]["care_type"].(string)
	})
	return results, nil
}

func (r *Reporter) episodeStatus(ctx context.Context) ([]map[string]interface{}, error) {
	eps, err := r.episodes.Episodes(ctx)
	if err != nil {
		return nil, err
	}

	counts := episode.StatusCounts(eps)
	results := make([]map[string]interface{}, 0, len(episode.AllStatuses))
	for _, status := range episode.AllStatuses {
		results = append(results, map[string]interface{}{"status": string(status), "total": counts[status]})
	}
	return results, nil
}

func (r *Reporter) scoreTrend(ctx context.Context) ([]map[string]interface{}, error) {
	encs, err := r.encounters.List(ctx)
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for _, e := range encs {
		snaps, err := r.snapshots.ListByEncounter(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		if len(snaps) < 2 {
			continue
		}

		first, latest := snaps[0], snaps[0]
		for _, sn := range snaps[1:] {
			if sn.TakenAt.Before(first.TakenAt) {
				first = sn
			}
			if sn.TakenAt.After(latest.TakenAt) {
				latest = sn
			}
		}
		results = append(results, map[string]interface{}{
			"encounter_id": e.ID,
			"first_score":  first.ComputedScore,
			"latest_score": latest.ComputedScore,
			"change":       latest.ComputedScore - first.ComputedScore,
		})
	}
	return results, nil
}
