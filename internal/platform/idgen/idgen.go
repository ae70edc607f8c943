// Package idgen produces the short prefixed identifiers used across the
// outcomes collections ("p" for patients, "e" for encounters, "s" for
// snapshots, "c" for clinicians). Identifiers keep the familiar
// prefix+timestamp shape but are guaranteed strictly increasing even when
// several are requested within the same millisecond.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Entity prefixes.
const (
	PrefixPatient   = "p"
	PrefixEncounter = "e"
	PrefixSnapshot  = "s"
	PrefixClinician = "c"
)

// Generator hands out monotonic prefixed ids. The zero value is not usable;
// call New or NewWithClock.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// New returns a Generator backed by the wall clock.
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Generator that reads time from now. Passing nil
// falls back to time.Now.
func NewWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns prefix + a millisecond timestamp, bumped past the previous
// value when the clock has not advanced.
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return prefix + strconv.FormatInt(ms, 10)
}

// Patient returns a new patient id.
func (g *Generator) Patient() string { return g.Next(PrefixPatient) }

// Encounter returns a new encounter id.
func (g *Generator) Encounter() string { return g.Next(PrefixEncounter) }

// Snapshot returns a new snapshot id.
func (g *Generator) Snapshot() string { return g.Next(PrefixSnapshot) }

// Clinician returns a new clinician id.
func (g *Generator) Clinician() string { return g.Next(PrefixClinician) }
