package episode

import (
	"context"
	"fmt"
	"testing"
)

// dashFixture seeds 12 encounters for one patient/clinician pair so the
// pagination properties are easy to assert.
func dashFixture(t *testing.T) (*Dashboard, *fixture) {
	t.Helper()
	f := newFixture(t)
	f.addPatient(t, "p1", "Taylor", "Morgan", "10001")
	f.addPatient(t, "p2", "Jordan", "Lee", "20002")
	f.addClinician(t, "c1", "Alex", "Nguyen")
	f.addClinician(t, "c2", "Jamie", "Rivera")

	for i := 0; i < 12; i++ {
		pid, cid := "p1", "c1"
		if i%3 == 0 {
			pid, cid = "p2", "c2"
		}
		f.addEncounter(t, fmt.Sprintf("e%02d", i), pid, cid, "knee", i)
	}
	return NewDashboard(f.svc, 10), f
}

func TestView_PaginatesTwelveByTen(t *testing.T) {
	d, _ := dashFixture(t)

	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Rows) != 10 {
		t.Errorf("expected 10 rows on page 1, got %d", len(v.Rows))
	}
	if v.Range.From != 1 || v.Range.To != 10 || v.Range.Total != 12 {
		t.Errorf("expected showing 1-10 of 12, got %+v", v.Range)
	}
	if v.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", v.TotalPages)
	}

	d.SetPage(2)
	v, err = d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Rows) != 2 {
		t.Errorf("expected 2 rows on page 2, got %d", len(v.Rows))
	}
	if v.Range.From != 11 || v.Range.To != 12 {
		t.Errorf("expected showing 11-12, got %+v", v.Range)
	}
}

func TestView_SearchResetsPage(t *testing.T) {
	d, _ := dashFixture(t)
	d.SetPage(2)

	d.SetSearch("morgan")
	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Page != 1 {
		t.Errorf("expected page reset to 1, got %d", v.Page)
	}
	if v.TotalFiltered != 8 {
		t.Errorf("expected 8 filtered rows, got %d", v.TotalFiltered)
	}
}

func TestView_ClinicianFilterResetsPage(t *testing.T) {
	d, _ := dashFixture(t)
	d.SetPage(2)

	d.SetClinician("c2")
	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Page != 1 {
		t.Errorf("expected page reset to 1, got %d", v.Page)
	}
	for _, row := range v.Rows {
		if row.ClinicianID != "c2" {
			t.Errorf("expected only c2 rows, got %s", row.ClinicianID)
		}
	}
}

func TestView_PageSizeChangeResetsPage(t *testing.T) {
	d, _ := dashFixture(t)
	d.SetPage(2)

	d.SetPageSize(25)
	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Page != 1 {
		t.Errorf("expected page reset to 1, got %d", v.Page)
	}
	if len(v.Rows) != 12 {
		t.Errorf("expected all 12 rows, got %d", len(v.Rows))
	}
}

func TestView_OutOfRangePageIsEmpty(t *testing.T) {
	d, _ := dashFixture(t)

	d.SetPage(99)
	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Rows) != 0 {
		t.Errorf("expected empty page, got %d rows", len(v.Rows))
	}
	if v.Range.From != 0 || v.Range.To != 0 {
		t.Errorf("expected empty range, got %+v", v.Range)
	}
}

func TestSort_ToggleSemantics(t *testing.T) {
	d, _ := dashFixture(t)

	d.Sort(ColumnPatient)
	v, _ := d.View(context.Background())
	if v.SortColumn != ColumnPatient || v.SortDirection != Ascending {
		t.Errorf("expected patient asc, got %s %d", v.SortColumn, v.SortDirection)
	}

	d.Sort(ColumnPatient)
	v, _ = d.View(context.Background())
	if v.SortDirection != Descending {
		t.Errorf("expected toggle to descending, got %d", v.SortDirection)
	}

	d.Sort(ColumnSetup)
	v, _ = d.View(context.Background())
	if v.SortColumn != ColumnSetup || v.SortDirection != Ascending {
		t.Errorf("expected new column to reset to ascending, got %s %d", v.SortColumn, v.SortDirection)
	}
}

func TestView_CountsCoverAllEpisodesNotJustFiltered(t *testing.T) {
	d, _ := dashFixture(t)
	d.SetSearch("lee")

	v, err := d.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, n := range v.Counts {
		total += n
	}
	if total != 12 {
		t.Errorf("expected tile counts over all 12 episodes, got %d", total)
	}
	if v.TotalFiltered != 4 {
		t.Errorf("expected 4 filtered rows, got %d", v.TotalFiltered)
	}
}
