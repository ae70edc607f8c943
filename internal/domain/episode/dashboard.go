package episode

import (
	"context"

	"github.com/agilept/outcomes/pkg/pagination"
)

// Dashboard holds the view-local table state for the open episodes screen:
// current filter, sort and page. It is a convenience for view layers; it
// owns no domain state and can be discarded and rebuilt at any time.
type Dashboard struct {
	svc     *Service
	filter  Filter
	sortCol Column
	sortDir Direction
	page    pagination.Params
}

// View is one rendered dashboard state: the visible rows plus the summary
// tiles and the pagination label data.
type View struct {
	Rows          []Episode
	Counts        map[Status]int
	Range         pagination.Range
	Page          int
	TotalPages    int
	TotalFiltered int
	SortColumn    Column
	SortDirection Direction
}

// NewDashboard returns a dashboard starting on page one with the given
// page size (falling back to the default size when not selectable).
func NewDashboard(svc *Service, pageSize int) *Dashboard {
	return &Dashboard{
		svc:  svc,
		page: pagination.New(1, pageSize),
	}
}

// SetSearch replaces the search term and resets to the first page.
func (d *Dashboard) SetSearch(term string) {
	d.filter.Search = term
	d.page.Page = 1
}

// SetClinician replaces the clinician filter (empty for all clinicians)
// and resets to the first page.
func (d *Dashboard) SetClinician(clinicianID string) {
	d.filter.ClinicianID = clinicianID
	d.page.Page = 1
}

// SetPageSize switches the page size and resets to the first page.
func (d *Dashboard) SetPageSize(size int) {
	d.page = pagination.New(1, size)
}

// SetPage moves to the given one-based page. Out-of-range pages simply
// render empty.
func (d *Dashboard) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	d.page.Page = page
}

// Sort orders by the given column: clicking the current column reverses
// direction, a new column resets to ascending.
func (d *Dashboard) Sort(col Column) {
	if d.sortCol == col {
		if d.sortDir == Ascending {
			d.sortDir = Descending
		} else {
			d.sortDir = Ascending
		}
		return
	}
	d.sortCol = col
	d.sortDir = Ascending
}

// Filter returns the currently applied filter.
func (d *Dashboard) Filter() Filter { return d.filter }

// View computes the current dashboard state. Tile counts cover the whole
// episode set, not just the filtered rows.
func (d *Dashboard) View(ctx context.Context) (View, error) {
	all, err := d.svc.Episodes(ctx)
	if err != nil {
		return View{}, err
	}

	filtered := d.filter.Apply(all)
	Sort(filtered, d.sortCol, d.sortDir)

	start, end := d.page.Bounds(len(filtered))
	return View{
		Rows:          filtered[start:end],
		Counts:        StatusCounts(all),
		Range:         d.page.Range(len(filtered)),
		Page:          d.page.Page,
		TotalPages:    d.page.TotalPages(len(filtered)),
		TotalFiltered: len(filtered),
		SortColumn:    d.sortCol,
		SortDirection: d.sortDir,
	}, nil
}
