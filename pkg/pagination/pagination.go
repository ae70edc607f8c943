package pagination

const (
	DefaultSize = 25
	DefaultPage = 1
)

// AllowedSizes are the page sizes the dashboard offers.
var AllowedSizes = []int{10, 25, 50, 100}

// Params holds one-based page-number pagination parameters.
type Params struct {
	Page int
	Size int
}

// New returns Params clamped to sane values: page floors at 1 and size
// falls back to DefaultSize unless it is one of AllowedSizes.
func New(page, size int) Params {
	p := Params{Page: page, Size: size}
	p.Clamp()
	return p
}

// Clamp normalizes the params in place.
func (p *Params) Clamp() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if !SizeAllowed(p.Size) {
		p.Size = DefaultSize
	}
}

// SizeAllowed reports whether size is a selectable page size.
func SizeAllowed(size int) bool {
	for _, s := range AllowedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Bounds returns the half-open slice bounds [start, end) for the current
// page over a collection of total items. A page past the end yields an
// empty range, never an error.
func (p Params) Bounds(total int) (start, end int) {
	start = (p.Page - 1) * p.Size
	if start > total {
		start = total
	}
	end = start + p.Size
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages returns the number of pages needed for total items. Zero items
// still occupy one (empty) page.
func (p Params) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	pages := total / p.Size
	if total%p.Size != 0 {
		pages++
	}
	return pages
}

// HasNext reports whether a page follows the current one.
func (p Params) HasNext(total int) bool {
	return p.Page < p.TotalPages(total)
}

// HasPrevious reports whether a page precedes the current one.
func (p Params) HasPrevious() bool {
	return p.Page > 1
}

// Range describes the "Showing X to Y of Z entries" label for the current
// page. From and To are one-based and inclusive; an empty page reports
// From == To == 0.
type Range struct {
	From  int
	To    int
	Total int
}

// Range returns the displayed entry range for total items.
func (p Params) Range(total int) Range {
	start, end := p.Bounds(total)
	if start == end {
		return Range{Total: total}
	}
	return Range{From: start + 1, To: end, Total: total}
}
