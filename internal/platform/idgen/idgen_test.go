package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestNext_Prefix(t *testing.T) {
	g := New()

	id := g.Next(PrefixPatient)
	if !strings.HasPrefix(id, "p") {
		t.Errorf("expected p prefix, got %q", id)
	}
	if len(id) < 2 {
		t.Errorf("expected timestamp after prefix, got %q", id)
	}
}

func TestNext_UniqueWithinSameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	g := NewWithClock(func() time.Time { return frozen })

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next(PrefixSnapshot)
		if seen[id] {
			t.Fatalf("duplicate id %q on call %d", id, i)
		}
		seen[id] = true
	}
}

func TestNext_Monotonic(t *testing.T) {
	g := New()

	prev := g.Next(PrefixEncounter)
	for i := 0; i < 100; i++ {
		next := g.Next(PrefixEncounter)
		if len(next) < len(prev) || (len(next) == len(prev) && next <= prev) {
			t.Fatalf("id %q not greater than %q", next, prev)
		}
		prev = next
	}
}

func TestNext_ClockGoingBackwards(t *testing.T) {
	times := []time.Time{
		time.UnixMilli(2000),
		time.UnixMilli(1000),
		time.UnixMilli(1500),
	}
	i := 0
	g := NewWithClock(func() time.Time {
		ts := times[i]
		if i < len(times)-1 {
			i++
		}
		return ts
	})

	a := g.Next(PrefixClinician)
	b := g.Next(PrefixClinician)
	c := g.Next(PrefixClinician)
	if a == b || b == c || a == c {
		t.Errorf("expected distinct ids, got %q %q %q", a, b, c)
	}
}

func TestTypedHelpers(t *testing.T) {
	g := NewWithClock(func() time.Time { return time.UnixMilli(1) })

	cases := []struct {
		id     string
		prefix string
	}{
		{g.Patient(), "p"},
		{g.Encounter(), "e"},
		{g.Snapshot(), "s"},
		{g.Clinician(), "c"},
	}
	for _, c := range cases {
		if !strings.HasPrefix(c.id, c.prefix) {
			t.Errorf("expected prefix %q, got id %q", c.prefix, c.id)
		}
	}
}
