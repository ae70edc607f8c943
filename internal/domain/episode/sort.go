package episode

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column identifies a sortable dashboard column.
type Column string

const (
	ColumnID        Column = "id"
	ColumnPatient   Column = "patient"
	ColumnClinician Column = "clinician"
	ColumnCondition Column = "condition"
	ColumnSetup     Column = "setup"
	ColumnIntake    Column = "intake"
	ColumnStatus    Column = "status"
	ColumnEmailSent Column = "email_sent"
	ColumnInfo      Column = "info"
)

// Columns lists the sortable columns in table order.
var Columns = []Column{
	ColumnID, ColumnPatient, ColumnClinician, ColumnCondition,
	ColumnSetup, ColumnIntake, ColumnStatus, ColumnEmailSent, ColumnInfo,
}

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// collator is shared across sorts. Collators are not safe for concurrent
// use, but all engine operations run on a single thread.
var collator = collate.New(language.English)

// Sort orders episodes by the given column, stably, in place. String
// columns compare with an English collator; date columns by time value,
// with absent dates sorting first. An empty column leaves the input order
// untouched.
func Sort(episodes []Episode, col Column, dir Direction) {
	if col == "" {
		return
	}

	less := lessFunc(collator, col)
	sort.SliceStable(episodes, func(i, j int) bool {
		if dir == Descending {
			i, j = j, i
		}
		return less(episodes[i], episodes[j])
	})
}

func lessFunc(c *collate.Collator, col Column) func(a, b Episode) bool {
	switch col {
	case ColumnPatient:
		return func(a, b Episode) bool { return c.CompareString(a.PatientName, b.PatientName) < 0 }
	case ColumnClinician:
		return func(a, b Episode) bool { return c.CompareString(a.ClinicianName, b.ClinicianName) < 0 }
	case ColumnCondition:
		return func(a, b Episode) bool { return c.CompareString(a.Condition, b.Condition) < 0 }
	case ColumnSetup:
		return func(a, b Episode) bool { return a.SetupDate.Before(b.SetupDate) }
	case ColumnIntake:
		return func(a, b Episode) bool { return beforePtr(a.IntakeDate, b.IntakeDate) }
	case ColumnStatus:
		return func(a, b Episode) bool { return beforePtr(a.StatusDate, b.StatusDate) }
	case ColumnEmailSent:
		return func(a, b Episode) bool { return a.EmailSentDate.Before(b.EmailSentDate) }
	case ColumnInfo:
		return func(a, b Episode) bool { return c.CompareString(string(a.Status), string(b.Status)) < 0 }
	default:
		return func(a, b Episode) bool { return c.CompareString(a.ID, b.ID) < 0 }
	}
}

// beforePtr orders optional dates: absent sorts before present.
func beforePtr(a, b *time.Time) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return a.Before(*b)
	}
}
